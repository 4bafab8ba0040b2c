package usecase_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Comercio-api/internal/application/dto"
	"github.com/jhoicas/Comercio-api/internal/application/usecase"
	"github.com/jhoicas/Comercio-api/internal/domain"
	"github.com/jhoicas/Comercio-api/internal/domain/entity"
)

type promoFixture struct {
	products   *fakeProductRepo
	promotions *fakePromotionRepo
	uc         *usecase.PromotionUseCase
}

func newPromoFixture() *promoFixture {
	f := &promoFixture{
		products:   newFakeProductRepo(),
		promotions: newFakePromotionRepo(),
	}
	f.uc = usecase.NewPromotionUseCase(f.promotions, f.products)
	return f
}

func (f *promoFixture) addProduct(id, companyID string, promoID *string) {
	f.products.products[id] = &entity.Product{
		ID:          id,
		CompanyID:   companyID,
		CategoryID:  "cat-1",
		PromotionID: promoID,
		Name:        "Producto " + id,
		Price:       decimal.NewFromInt(100),
	}
}

func (f *promoFixture) addPromotion(id string) {
	f.promotions.promotions[id] = &entity.Promotion{
		ID:                 id,
		Name:               "Promo " + id,
		DiscountPercentage: decimal.NewFromInt(10),
		StartDate:          time.Now().Add(-time.Hour),
		EndDate:            time.Now().Add(time.Hour),
		IsActive:           true,
	}
}

func validPromoRequest() dto.CreatePromotionRequest {
	now := time.Now()
	return dto.CreatePromotionRequest{
		Name:               "Descuento de temporada",
		DiscountPercentage: decimal.NewFromInt(15),
		StartDate:          now,
		EndDate:            now.Add(72 * time.Hour),
		IsActive:           true,
	}
}

func TestPromotionCreate_VentanaInvalida(t *testing.T) {
	f := newPromoFixture()
	in := validPromoRequest()
	in.EndDate = in.StartDate.Add(-time.Hour)

	_, err := f.uc.Create(adminIdent("company-1"), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "el fin debe ser posterior al inicio")

	in.EndDate = in.StartDate
	_, err = f.uc.Create(adminIdent("company-1"), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "ventana de duración cero tampoco vale")
}

func TestPromotionCreate_PorcentajeInvalido(t *testing.T) {
	f := newPromoFixture()
	for _, pct := range []int64{0, -10, 101} {
		in := validPromoRequest()
		in.DiscountPercentage = decimal.NewFromInt(pct)
		_, err := f.uc.Create(adminIdent("company-1"), in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "porcentaje %d debe rechazarse", pct)
	}
}

func TestPromotionCreate_Valida(t *testing.T) {
	f := newPromoFixture()
	out, err := f.uc.Create(adminIdent("company-1"), validPromoRequest())
	require.NoError(t, err)
	assert.Equal(t, 0, out.ProductCount)
	assert.True(t, out.DiscountPercentage.Equal(decimal.NewFromInt(15)))
}

func TestPromotionAssign_ReemplazaPromocionAnterior(t *testing.T) {
	f := newPromoFixture()
	f.addPromotion("promo-vieja")
	f.addPromotion("promo-nueva")
	vieja := "promo-vieja"
	f.addProduct("p1", "company-1", &vieja)

	err := f.uc.AssignProducts(adminIdent("company-1"), "promo-nueva",
		dto.AssignProductsRequest{ProductIDs: []string{"p1"}})
	require.NoError(t, err)

	assert.Equal(t, "promo-nueva", *f.products.products["p1"].PromotionID,
		"asignar reemplaza: un producto tiene a lo sumo una promoción")
}

func TestPromotionAssign_ProductoDeOtraEmpresa(t *testing.T) {
	f := newPromoFixture()
	f.addPromotion("promo-1")
	f.addProduct("p1", "company-2", nil)

	err := f.uc.AssignProducts(adminIdent("company-1"), "promo-1",
		dto.AssignProductsRequest{ProductIDs: []string{"p1"}})
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Nil(t, f.products.products["p1"].PromotionID, "nada se asigna si el lote falla")
}

func TestPromotionAssign_ProductoInexistente(t *testing.T) {
	f := newPromoFixture()
	f.addPromotion("promo-1")
	f.addProduct("p1", "company-1", nil)

	err := f.uc.AssignProducts(adminIdent("company-1"), "promo-1",
		dto.AssignProductsRequest{ProductIDs: []string{"p1", "no-existe"}})

	var notFound *domain.ProductNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "no-existe", notFound.ProductID)
	assert.Nil(t, f.products.products["p1"].PromotionID,
		"el lote se valida completo antes de mutar")
}

func TestPromotionRemove_NoAsignadaEsNoOp(t *testing.T) {
	f := newPromoFixture()
	f.addPromotion("promo-1")
	f.addPromotion("promo-2")
	otra := "promo-2"
	f.addProduct("p1", "company-1", &otra)

	err := f.uc.RemoveProducts(adminIdent("company-1"), "promo-1",
		dto.AssignProductsRequest{ProductIDs: []string{"p1"}})
	require.NoError(t, err)
	assert.Equal(t, "promo-2", *f.products.products["p1"].PromotionID,
		"quitar una promoción que el producto no tiene no toca la asignada")
}

func TestPromotionDelete_DesasignaProductos(t *testing.T) {
	f := newPromoFixture()
	f.addPromotion("promo-1")
	promoID := "promo-1"
	f.addProduct("p1", "company-1", &promoID)
	f.addProduct("p2", "company-1", &promoID)
	f.addProduct("p3", "company-1", nil)

	err := f.uc.Delete(adminIdent("company-1"), "promo-1")
	require.NoError(t, err)

	_, exists := f.promotions.promotions["promo-1"]
	assert.False(t, exists)
	assert.Nil(t, f.products.products["p1"].PromotionID)
	assert.Nil(t, f.products.products["p2"].PromotionID)
	assert.Nil(t, f.products.products["p3"].PromotionID)
}

func TestPromotionGetByID_CuentaProductos(t *testing.T) {
	f := newPromoFixture()
	f.addPromotion("promo-1")
	promoID := "promo-1"
	f.addProduct("p1", "company-1", &promoID)
	f.addProduct("p2", "company-1", &promoID)

	out, err := f.uc.GetByID("promo-1")
	require.NoError(t, err)
	assert.Equal(t, 2, out.ProductCount)
}

func TestPromotionWrites_ClienteNoPuede(t *testing.T) {
	f := newPromoFixture()
	f.addPromotion("promo-1")

	_, err := f.uc.Create(userIdent(), validPromoRequest())
	assert.ErrorIs(t, err, domain.ErrForbidden)

	err = f.uc.Delete(userIdent(), "promo-1")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	err = f.uc.AssignProducts(userIdent(), "promo-1",
		dto.AssignProductsRequest{ProductIDs: []string{"p1"}})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
