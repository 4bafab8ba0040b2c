package usecase_test

import (
	"sort"

	"github.com/jhoicas/Comercio-api/internal/domain/entity"
	"github.com/jhoicas/Comercio-api/internal/domain/repository"
)

// Fakes en memoria para los casos de uso de catálogo. Sin mutex: los tests
// de este paquete no concurren (la carrera de stock vive en el core de órdenes).

type fakeProductRepo struct {
	products map[string]*entity.Product
}

var _ repository.ProductRepository = (*fakeProductRepo)(nil)

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[string]*entity.Product{}}
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	return r.filter(func(*entity.Product) bool { return true }), nil
}

func (r *fakeProductRepo) ListByCategory(categoryID string, limit, offset int) ([]*entity.Product, error) {
	return r.filter(func(p *entity.Product) bool { return p.CategoryID == categoryID }), nil
}

func (r *fakeProductRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Product, error) {
	return r.filter(func(p *entity.Product) bool { return p.CompanyID == companyID }), nil
}

func (r *fakeProductRepo) ListByPromotion(promotionID string) ([]*entity.Product, error) {
	return r.filter(func(p *entity.Product) bool {
		return p.PromotionID != nil && *p.PromotionID == promotionID
	}), nil
}

func (r *fakeProductRepo) Search(keyword string, limit, offset int) ([]*entity.Product, error) {
	return r.filter(func(*entity.Product) bool { return true }), nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) SetPromotion(productID string, promotionID *string) error {
	if p, ok := r.products[productID]; ok {
		p.PromotionID = promotionID
	}
	return nil
}

func (r *fakeProductRepo) DecrementStock(productID string, quantity int) (bool, error) {
	p, ok := r.products[productID]
	if !ok || p.StockQuantity < quantity {
		return false, nil
	}
	p.StockQuantity -= quantity
	return true, nil
}

func (r *fakeProductRepo) Delete(id string) error {
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepo) filter(keep func(*entity.Product) bool) []*entity.Product {
	var list []*entity.Product
	for _, p := range r.products {
		if keep(p) {
			cp := *p
			list = append(list, &cp)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list
}

type fakeCategoryRepo struct {
	categories map[string]*entity.Category
}

var _ repository.CategoryRepository = (*fakeCategoryRepo)(nil)

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: map[string]*entity.Category{}}
}

func (r *fakeCategoryRepo) Create(c *entity.Category) error {
	cp := *c
	r.categories[c.ID] = &cp
	return nil
}

func (r *fakeCategoryRepo) GetByID(id string) (*entity.Category, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCategoryRepo) List(limit, offset int) ([]*entity.Category, error) {
	var list []*entity.Category
	for _, c := range r.categories {
		cp := *c
		list = append(list, &cp)
	}
	return list, nil
}

func (r *fakeCategoryRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Category, error) {
	var list []*entity.Category
	for _, c := range r.categories {
		if c.CompanyID == companyID {
			cp := *c
			list = append(list, &cp)
		}
	}
	return list, nil
}

func (r *fakeCategoryRepo) Update(c *entity.Category) error {
	cp := *c
	r.categories[c.ID] = &cp
	return nil
}

func (r *fakeCategoryRepo) Delete(id string) error {
	delete(r.categories, id)
	return nil
}

type fakeCompanyRepo struct {
	companies map[string]*entity.Company
}

var _ repository.CompanyRepository = (*fakeCompanyRepo)(nil)

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{companies: map[string]*entity.Company{}}
}

func (r *fakeCompanyRepo) Create(c *entity.Company) error {
	cp := *c
	r.companies[c.ID] = &cp
	return nil
}

func (r *fakeCompanyRepo) GetByID(id string) (*entity.Company, error) {
	c, ok := r.companies[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCompanyRepo) List(limit, offset int) ([]*entity.Company, error) {
	var list []*entity.Company
	for _, c := range r.companies {
		cp := *c
		list = append(list, &cp)
	}
	return list, nil
}

func (r *fakeCompanyRepo) Update(c *entity.Company) error {
	cp := *c
	r.companies[c.ID] = &cp
	return nil
}

func (r *fakeCompanyRepo) Delete(id string) error {
	delete(r.companies, id)
	return nil
}

type fakePromotionRepo struct {
	promotions map[string]*entity.Promotion
}

var _ repository.PromotionRepository = (*fakePromotionRepo)(nil)

func newFakePromotionRepo() *fakePromotionRepo {
	return &fakePromotionRepo{promotions: map[string]*entity.Promotion{}}
}

func (r *fakePromotionRepo) Create(p *entity.Promotion) error {
	cp := *p
	r.promotions[p.ID] = &cp
	return nil
}

func (r *fakePromotionRepo) GetByID(id string) (*entity.Promotion, error) {
	p, ok := r.promotions[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakePromotionRepo) GetByIDs(ids []string) (map[string]*entity.Promotion, error) {
	result := map[string]*entity.Promotion{}
	for _, id := range ids {
		if p, ok := r.promotions[id]; ok {
			cp := *p
			result[id] = &cp
		}
	}
	return result, nil
}

func (r *fakePromotionRepo) List(limit, offset int) ([]*entity.Promotion, error) {
	var list []*entity.Promotion
	for _, p := range r.promotions {
		cp := *p
		list = append(list, &cp)
	}
	return list, nil
}

func (r *fakePromotionRepo) Update(p *entity.Promotion) error {
	cp := *p
	r.promotions[p.ID] = &cp
	return nil
}

func (r *fakePromotionRepo) Delete(id string) error {
	delete(r.promotions, id)
	return nil
}
