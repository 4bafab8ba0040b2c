package postgres

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"time"

	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Comercio-api/pkg/config"
)

// Parámetros del pool. El backend es el único cliente de la base,
// así que los topes se quedan cortos a propósito.
const (
	poolMaxConns        = 25
	poolMinConns        = 2
	poolConnLifetime    = time.Hour
	poolConnIdleTime    = 30 * time.Minute
	poolHealthCheckEach = time.Minute
)

// NewPool crea el pool de conexiones PostgreSQL de la aplicación.
// Registra el codec NUMERIC -> shopspring/decimal en cada conexión y
// fuerza IPv4 donde puede (contenedores sin stack IPv6 con DNS que solo
// devuelve AAAA).
func NewPool(ctx context.Context, cfg config.DBConfig) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(buildDSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("parse DSN: %w", err)
	}

	poolConfig.ConnConfig.DialFunc = dialIPv4First
	poolConfig.MaxConns = poolMaxConns
	poolConfig.MinConns = poolMinConns
	poolConfig.MaxConnLifetime = poolConnLifetime
	poolConfig.MaxConnIdleTime = poolConnIdleTime
	poolConfig.HealthCheckPeriod = poolHealthCheckEach

	poolConfig.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("crear pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping DB: %w", err)
	}
	return pool, nil
}

// buildDSN arma el connection string: DATABASE_URL manda si está definido,
// si no se construye desde DB_HOST, DB_PORT, etc. En ambos casos se intenta
// dejar el host ya resuelto a IPv4.
func buildDSN(cfg config.DBConfig) string {
	if cfg.DatabaseURL != "" {
		return databaseURLWithIPv4(cfg.DatabaseURL)
	}
	if ipv4, err := resolveIPv4(cfg.Host); err == nil {
		cfg.Host = ipv4
	}
	return cfg.DSN()
}

// dialIPv4First marca tcp4 cuando el host tiene dirección IPv4; si no se
// puede resolver, cae al dial normal y deja que pgx reporte el error real.
func dialIPv4First(ctx context.Context, network, addr string) (net.Conn, error) {
	dialer := &net.Dialer{}
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return nil, err
	}
	ipv4, err := resolveIPv4(host)
	if err != nil {
		return dialer.DialContext(ctx, network, addr)
	}
	return dialer.DialContext(ctx, "tcp4", net.JoinHostPort(ipv4, port))
}

// resolveIPv4 devuelve la dirección IPv4 de un host. Primero el resolver del
// sistema; si ese solo conoce AAAA, reintenta contra un DNS público.
func resolveIPv4(host string) (string, error) {
	if ip := net.ParseIP(host); ip != nil {
		if ip.To4() != nil {
			return host, nil
		}
		return "", fmt.Errorf("resolver %s: es IPv6", host)
	}

	if ips, err := net.LookupIP(host); err == nil {
		if ipv4 := firstIPv4(ips); ipv4 != "" {
			return ipv4, nil
		}
	}

	fallback := &net.Resolver{
		PreferGo: true,
		Dial: func(ctx context.Context, network, address string) (net.Conn, error) {
			d := net.Dialer{}
			return d.DialContext(ctx, "udp", "8.8.8.8:53")
		},
	}
	ips, err := fallback.LookupIP(context.Background(), "ip4", host)
	if err != nil {
		return "", fmt.Errorf("resolver %s: %w", host, err)
	}
	if ipv4 := firstIPv4(ips); ipv4 != "" {
		return ipv4, nil
	}
	return "", fmt.Errorf("resolver %s: sin registros A", host)
}

func firstIPv4(ips []net.IP) string {
	for _, ip := range ips {
		if ip.To4() != nil {
			return ip.String()
		}
	}
	return ""
}

// databaseURLWithIPv4 sustituye el hostname de la URL por su IPv4 si existe.
// Ante cualquier problema devuelve la URL tal cual.
func databaseURLWithIPv4(databaseURL string) string {
	u, err := url.Parse(databaseURL)
	if err != nil {
		return databaseURL
	}
	ipv4, err := resolveIPv4(u.Hostname())
	if err != nil {
		return databaseURL
	}
	port := u.Port()
	if port == "" {
		port = "5432"
	}
	u.Host = net.JoinHostPort(ipv4, port)
	return u.String()
}
