package tests

import (
	"sort"

	"inventory/pkg/domain/model"
)

type mockProductRepository struct {
	store  map[int64]*model.Product
	nextID int64
}

func newMockProductRepository() *mockProductRepository {
	return &mockProductRepository{store: make(map[int64]*model.Product)}
}

func (m *mockProductRepository) Store(p *model.Product) error {
	for _, existing := range m.store {
		if existing.Name == p.Name {
			return model.ErrDuplicateName
		}
	}
	m.nextID++
	p.ID = m.nextID
	clone := *p
	m.store[p.ID] = &clone
	return nil
}

func (m *mockProductRepository) Update(p *model.Product) error {
	if _, ok := m.store[p.ID]; !ok {
		return model.ErrProductNotFound
	}
	for _, other := range m.store {
		if other.ID != p.ID && other.Name == p.Name {
			return model.ErrDuplicateName
		}
	}
	clone := *p
	m.store[p.ID] = &clone
	return nil
}

func (m *mockProductRepository) Find(id int64) (*model.Product, error) {
	if p, ok := m.store[id]; ok {
		clone := *p
		return &clone, nil
	}
	return nil, model.ErrProductNotFound
}

func (m *mockProductRepository) FindByName(name string) (*model.Product, error) {
	for _, p := range m.store {
		if p.Name == name {
			clone := *p
			return &clone, nil
		}
	}
	return nil, model.ErrProductNotFound
}

func (m *mockProductRepository) List() ([]model.Product, error) {
	products := make([]model.Product, 0, len(m.store))
	for _, p := range m.store {
		products = append(products, *p)
	}
	sort.Slice(products, func(i, j int) bool { return products[i].Name < products[j].Name })
	return products, nil
}

func (m *mockProductRepository) AdjustQuantity(id int64, delta int) (int, error) {
	p, ok := m.store[id]
	if !ok {
		return 0, model.ErrProductNotFound
	}
	if p.Quantity+delta < 0 {
		return 0, model.ErrInsufficientStock
	}
	p.Quantity += delta
	return p.Quantity, nil
}

type mockCustomerRepository struct {
	store  map[int64]*model.Customer
	nextID int64
}

func newMockCustomerRepository() *mockCustomerRepository {
	return &mockCustomerRepository{store: make(map[int64]*model.Customer)}
}

func (m *mockCustomerRepository) Store(c *model.Customer) error {
	if c.Email != nil {
		for _, existing := range m.store {
			if existing.Email != nil && *existing.Email == *c.Email {
				return model.ErrDuplicateEmail
			}
		}
	}
	m.nextID++
	c.ID = m.nextID
	clone := *c
	m.store[c.ID] = &clone
	return nil
}

func (m *mockCustomerRepository) Find(id int64) (*model.Customer, error) {
	if c, ok := m.store[id]; ok {
		clone := *c
		return &clone, nil
	}
	return nil, model.ErrCustomerNotFound
}

func (m *mockCustomerRepository) FindByEmail(email string) (*model.Customer, error) {
	for _, c := range m.store {
		if c.Email != nil && *c.Email == email {
			clone := *c
			return &clone, nil
		}
	}
	return nil, model.ErrCustomerNotFound
}

func (m *mockCustomerRepository) FindByName(name string) (*model.Customer, error) {
	for _, c := range m.store {
		if c.Name == name {
			clone := *c
			return &clone, nil
		}
	}
	return nil, model.ErrCustomerNotFound
}

func (m *mockCustomerRepository) List() ([]model.Customer, error) {
	customers := make([]model.Customer, 0, len(m.store))
	for _, c := range m.store {
		customers = append(customers, *c)
	}
	sort.Slice(customers, func(i, j int) bool { return customers[i].Name < customers[j].Name })
	return customers, nil
}

// mockPurchaseRepository mimics the transactional contract: it validates
// every stock decrement before applying anything, so a failing purchase
// leaves products untouched.
type mockPurchaseRepository struct {
	products  *mockProductRepository
	purchases map[int64]*model.Purchase
	items     map[int64][]model.PurchaseItem
	nextID    int64
}

func newMockPurchaseRepository(products *mockProductRepository) *mockPurchaseRepository {
	return &mockPurchaseRepository{
		products:  products,
		purchases: make(map[int64]*model.Purchase),
		items:     make(map[int64][]model.PurchaseItem),
	}
}

func (m *mockPurchaseRepository) Create(purchase *model.Purchase, items []model.PurchaseItem) error {
	for _, item := range items {
		p, ok := m.products.store[item.ProductID]
		if !ok {
			return model.ErrProductNotFound
		}
		if p.Quantity < item.Quantity {
			return model.ErrInsufficientStock
		}
	}

	m.nextID++
	purchase.ID = m.nextID
	clone := *purchase
	m.purchases[purchase.ID] = &clone

	for i := range items {
		m.nextID++
		items[i].ID = m.nextID
		items[i].PurchaseID = purchase.ID
		m.products.store[items[i].ProductID].Quantity -= items[i].Quantity
	}
	m.items[purchase.ID] = append([]model.PurchaseItem(nil), items...)
	return nil
}

func (m *mockPurchaseRepository) Find(id int64) (*model.Purchase, error) {
	if p, ok := m.purchases[id]; ok {
		clone := *p
		return &clone, nil
	}
	return nil, model.ErrPurchaseNotFound
}

func (m *mockPurchaseRepository) FindItems(purchaseID int64) ([]model.PurchaseItem, error) {
	return append([]model.PurchaseItem(nil), m.items[purchaseID]...), nil
}

func (m *mockPurchaseRepository) List(limit int) ([]model.Purchase, error) {
	purchases := make([]model.Purchase, 0, len(m.purchases))
	for _, p := range m.purchases {
		purchases = append(purchases, *p)
	}
	sort.Slice(purchases, func(i, j int) bool { return purchases[i].ID > purchases[j].ID })
	if len(purchases) > limit {
		purchases = purchases[:limit]
	}
	return purchases, nil
}
