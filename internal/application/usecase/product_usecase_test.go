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

type catalogFixture struct {
	products   *fakeProductRepo
	categories *fakeCategoryRepo
	companies  *fakeCompanyRepo
	promotions *fakePromotionRepo
	uc         *usecase.ProductUseCase
}

func newCatalogFixture() *catalogFixture {
	f := &catalogFixture{
		products:   newFakeProductRepo(),
		categories: newFakeCategoryRepo(),
		companies:  newFakeCompanyRepo(),
		promotions: newFakePromotionRepo(),
	}
	f.uc = usecase.NewProductUseCase(f.products, f.categories, f.companies, f.promotions)
	f.companies.companies["company-1"] = &entity.Company{ID: "company-1", Name: "Tienda Uno", IsActive: true}
	f.companies.companies["company-2"] = &entity.Company{ID: "company-2", Name: "Tienda Dos", IsActive: true}
	f.categories.categories["cat-1"] = &entity.Category{ID: "cat-1", CompanyID: "company-1", Name: "Electrónica"}
	f.categories.categories["cat-2"] = &entity.Category{ID: "cat-2", CompanyID: "company-2", Name: "Hogar"}
	return f
}

func (f *catalogFixture) addProduct(id, companyID string, price string, promoID *string) {
	f.products.products[id] = &entity.Product{
		ID:            id,
		CompanyID:     companyID,
		CategoryID:    "cat-1",
		PromotionID:   promoID,
		Name:          "Producto " + id,
		Price:         decimal.RequireFromString(price),
		StockQuantity: 10,
	}
}

func (f *catalogFixture) addPromotion(id string, pct int64, active bool, start, end time.Time) {
	f.promotions.promotions[id] = &entity.Promotion{
		ID:                 id,
		Name:               "Promo " + id,
		DiscountPercentage: decimal.NewFromInt(pct),
		StartDate:          start,
		EndDate:            end,
		IsActive:           active,
	}
}

func adminIdent(companyID string) domain.Identity {
	return domain.Identity{UserID: "admin-1", CompanyID: companyID, Role: entity.RoleAdmin}
}

func userIdent() domain.Identity {
	return domain.Identity{UserID: "user-1", Role: entity.RoleUser}
}

// ──────────────────────────────────────────────────────────────────────────────
// Decoración de precios en el catálogo
// ──────────────────────────────────────────────────────────────────────────────

func TestProductList_AplicaPromocionVigente(t *testing.T) {
	f := newCatalogFixture()
	now := time.Now()
	f.addPromotion("promo-1", 20, true, now.Add(-time.Hour), now.Add(time.Hour))
	promoID := "promo-1"
	f.addProduct("p1", "company-1", "100", &promoID)
	f.addProduct("p2", "company-1", "50", nil)

	out, err := f.uc.List(dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, out.Items, 2)

	byID := map[string]dto.ProductResponse{}
	for _, item := range out.Items {
		byID[item.ID] = item
	}

	withPromo := byID["p1"]
	require.NotNil(t, withPromo.DiscountedPrice, "promoción vigente debe anotar precio con descuento")
	assert.True(t, withPromo.DiscountedPrice.Equal(decimal.NewFromInt(80)),
		"100 con 20%% da 80, dio %s", withPromo.DiscountedPrice)
	assert.True(t, withPromo.Price.Equal(decimal.NewFromInt(100)), "el precio base no cambia")
	assert.Equal(t, "Promo promo-1", withPromo.PromotionName)

	sinPromo := byID["p2"]
	assert.Nil(t, sinPromo.DiscountedPrice)
	assert.Nil(t, sinPromo.DiscountPercentage)
}

func TestProductList_PromocionFueraDeVentanaNoAplica(t *testing.T) {
	f := newCatalogFixture()
	now := time.Now()
	f.addPromotion("vencida", 50, true, now.Add(-48*time.Hour), now.Add(-24*time.Hour))
	f.addPromotion("inactiva", 50, false, now.Add(-time.Hour), now.Add(time.Hour))
	vencida, inactiva := "vencida", "inactiva"
	f.addProduct("p1", "company-1", "100", &vencida)
	f.addProduct("p2", "company-1", "100", &inactiva)

	out, err := f.uc.List(dto.PageRequest{})
	require.NoError(t, err)
	for _, item := range out.Items {
		assert.Nil(t, item.DiscountedPrice,
			"promoción vencida o inactiva no debe descontar (producto %s)", item.ID)
	}
}

func TestProductGetByID_ResuelveNombres(t *testing.T) {
	f := newCatalogFixture()
	f.addProduct("p1", "company-1", "100", nil)

	out, err := f.uc.GetByID("p1")
	require.NoError(t, err)
	assert.Equal(t, "Electrónica", out.CategoryName)
	assert.Equal(t, "Tienda Uno", out.CompanyName)
}

func TestProductGetByID_Inexistente(t *testing.T) {
	f := newCatalogFixture()
	_, err := f.uc.GetByID("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Escrituras con scoping por empresa
// ──────────────────────────────────────────────────────────────────────────────

func TestProductCreate_ClienteNoPuede(t *testing.T) {
	f := newCatalogFixture()
	_, err := f.uc.Create(userIdent(), dto.CreateProductRequest{
		Name: "X", Price: decimal.NewFromInt(10), CategoryID: "cat-1",
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestProductCreate_AdminEnCategoriaAjena(t *testing.T) {
	f := newCatalogFixture()
	_, err := f.uc.Create(adminIdent("company-1"), dto.CreateProductRequest{
		Name: "X", Price: decimal.NewFromInt(10), CategoryID: "cat-2",
	})
	assert.ErrorIs(t, err, domain.ErrForbidden,
		"un Admin no puede crear productos en categorías de otra empresa")
}

func TestProductCreate_PrecioInvalido(t *testing.T) {
	f := newCatalogFixture()
	for _, price := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-5)} {
		_, err := f.uc.Create(adminIdent("company-1"), dto.CreateProductRequest{
			Name: "X", Price: price, CategoryID: "cat-1",
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

func TestProductCreate_HeredaEmpresaDeLaCategoria(t *testing.T) {
	f := newCatalogFixture()
	out, err := f.uc.Create(adminIdent("company-1"), dto.CreateProductRequest{
		Name: "Nuevo", Price: decimal.NewFromInt(25), StockQuantity: 3, CategoryID: "cat-1",
	})
	require.NoError(t, err)
	assert.Equal(t, "company-1", out.CompanyID)
	assert.Equal(t, 3, out.StockQuantity)
}

func TestProductUpdate_AdminDeOtraEmpresa(t *testing.T) {
	f := newCatalogFixture()
	f.addProduct("p1", "company-1", "100", nil)

	nombre := "Renombrado"
	_, err := f.uc.Update(adminIdent("company-2"), "p1", dto.UpdateProductRequest{Name: &nombre})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestProductDelete_AdminDeOtraEmpresa(t *testing.T) {
	f := newCatalogFixture()
	f.addProduct("p1", "company-1", "100", nil)

	err := f.uc.Delete(adminIdent("company-2"), "p1")
	assert.ErrorIs(t, err, domain.ErrForbidden)
	_, ok := f.products.products["p1"]
	assert.True(t, ok, "el producto sigue existiendo")
}

func TestProductDelete_SuperAdminCualquierEmpresa(t *testing.T) {
	f := newCatalogFixture()
	f.addProduct("p1", "company-1", "100", nil)

	err := f.uc.Delete(domain.Identity{UserID: "root", Role: entity.RoleSuperAdmin}, "p1")
	require.NoError(t, err)
	_, ok := f.products.products["p1"]
	assert.False(t, ok)
}
