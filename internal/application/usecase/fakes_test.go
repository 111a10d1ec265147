package usecase_test

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/shatalito/pos-api/internal/domain"
	"github.com/shatalito/pos-api/internal/domain/entity"
	"github.com/shatalito/pos-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios en memoria para los tests de casos de uso.
// ──────────────────────────────────────────────────────────────────────────────

type memStates struct {
	states []*entity.State
}

func seededStates() *memStates {
	return &memStates{states: []*entity.State{
		{ID: 1, Name: entity.StatePendiente},
		{ID: 2, Name: entity.StateEnPreparacion},
		{ID: 3, Name: entity.StateListo},
		{ID: 4, Name: entity.StatePagado},
		{ID: 5, Name: entity.StateCancelado},
	}}
}

func (m *memStates) GetByID(id int64) (*entity.State, error) {
	for _, s := range m.states {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, nil
}

func (m *memStates) GetByName(name string) (*entity.State, error) {
	for _, s := range m.states {
		if s.Name == name {
			return s, nil
		}
	}
	return nil, nil
}

func (m *memStates) First() (*entity.State, error) {
	if len(m.states) == 0 {
		return nil, nil
	}
	first := m.states[0]
	for _, s := range m.states[1:] {
		if s.ID < first.ID {
			first = s
		}
	}
	return first, nil
}

func (m *memStates) List() ([]*entity.State, error) { return m.states, nil }

type memProducts struct {
	seq int64
	m   map[int64]*entity.Product
}

func newMemProducts() *memProducts { return &memProducts{m: map[int64]*entity.Product{}} }

func (m *memProducts) Create(p *entity.Product) error {
	m.seq++
	p.ID = m.seq
	m.m[p.ID] = p
	return nil
}

func (m *memProducts) GetByID(id int64) (*entity.Product, error) { return m.m[id], nil }

func (m *memProducts) GetByName(name string) (*entity.Product, error) {
	for _, p := range m.m {
		if strings.EqualFold(p.Name, name) {
			return p, nil
		}
	}
	return nil, nil
}

func (m *memProducts) Update(p *entity.Product) error {
	m.m[p.ID] = p
	return nil
}

func (m *memProducts) UpdateStock(id int64, stock int) error {
	if p, ok := m.m[id]; ok {
		p.Stock = stock
	}
	return nil
}

func (m *memProducts) List() ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(m.m))
	for _, p := range m.m {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memProducts) ListAvailable() ([]*entity.Product, error) {
	all, _ := m.List()
	var out []*entity.Product
	for _, p := range all {
		if p.Available() {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memProducts) Delete(id int64) error {
	delete(m.m, id)
	return nil
}

type memItems struct {
	seq int64
	m   map[int64]*entity.OrderItem
}

func newMemItems() *memItems { return &memItems{m: map[int64]*entity.OrderItem{}} }

func (m *memItems) Create(it *entity.OrderItem) error {
	m.seq++
	it.ID = m.seq
	cp := *it
	m.m[it.ID] = &cp
	return nil
}

func (m *memItems) GetByID(id int64) (*entity.OrderItem, error) {
	it, ok := m.m[id]
	if !ok {
		return nil, nil
	}
	cp := *it
	return &cp, nil
}

func (m *memItems) Update(it *entity.OrderItem) error {
	cp := *it
	m.m[it.ID] = &cp
	return nil
}

func (m *memItems) Delete(id int64) error {
	delete(m.m, id)
	return nil
}

func (m *memItems) ListByOrder(orderID int64) ([]*entity.OrderItem, error) {
	var out []*entity.OrderItem
	for _, it := range m.m {
		if it.OrderID == orderID {
			out = append(out, it)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memItems) SumByOrder(orderID int64) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, it := range m.m {
		if it.OrderID == orderID {
			total = total.Add(it.Subtotal)
		}
	}
	return total, nil
}

type memOrders struct {
	seq    int64
	m      map[int64]*entity.Order
	states *memStates
	items  *memItems
}

func newMemOrders(states *memStates, items *memItems) *memOrders {
	return &memOrders{m: map[int64]*entity.Order{}, states: states, items: items}
}

func (m *memOrders) Create(o *entity.Order) error {
	m.seq++
	o.ID = m.seq
	if state, _ := m.states.GetByID(o.StateID); state != nil {
		o.StateName = state.Name
	}
	cp := *o
	m.m[o.ID] = &cp
	return nil
}

func (m *memOrders) GetByID(id int64) (*entity.Order, error) {
	o, ok := m.m[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (m *memOrders) GetByIDWithItems(id int64) (*entity.Order, error) {
	o, err := m.GetByID(id)
	if err != nil || o == nil {
		return o, err
	}
	o.Items, _ = m.items.ListByOrder(id)
	return o, nil
}

func (m *memOrders) List(filter repository.OrderFilter) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range m.m {
		if filter.StateID != nil && o.StateID != *filter.StateID {
			continue
		}
		if filter.OrderDate != nil && !sameDay(o.OrderDate, *filter.OrderDate) {
			continue
		}
		cp := *o
		cp.Items, _ = m.items.ListByOrder(o.ID)
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (m *memOrders) ListByState(stateID int64) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range m.m {
		if o.StateID == stateID {
			cp := *o
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TableNumber != out[j].TableNumber {
			return out[i].TableNumber < out[j].TableNumber
		}
		return out[i].InitialTime.Before(out[j].InitialTime)
	})
	return out, nil
}

func (m *memOrders) UpdateStatus(id, stateID int64) error {
	o, ok := m.m[id]
	if !ok {
		return domain.ErrNotFound
	}
	o.StateID = stateID
	if state, _ := m.states.GetByID(stateID); state != nil {
		o.StateName = state.Name
	}
	return nil
}

func (m *memOrders) UpdateAmount(id int64, amount decimal.Decimal) error {
	o, ok := m.m[id]
	if !ok {
		return domain.ErrNotFound
	}
	o.Amount = amount
	return nil
}

func (m *memOrders) UpdatePreferenceID(id int64, preferenceID string) error {
	o, ok := m.m[id]
	if !ok {
		return domain.ErrNotFound
	}
	o.PreferenceID = preferenceID
	return nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

type memUsers struct {
	m map[string]*entity.User
}

func newMemUsers() *memUsers { return &memUsers{m: map[string]*entity.User{}} }

func (m *memUsers) Create(u *entity.User) error {
	if _, ok := m.m[u.Username]; ok {
		return domain.ErrDuplicate
	}
	if u.ID == "" {
		u.ID = "uid-" + u.Username
	}
	u.CreatedAt = time.Now()
	cp := *u
	m.m[u.Username] = &cp
	return nil
}

func (m *memUsers) GetByUsername(username string) (*entity.User, error) {
	u, ok := m.m[username]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (m *memUsers) Update(u *entity.User) error {
	if _, ok := m.m[u.Username]; !ok {
		return domain.ErrUserNotFound
	}
	cp := *u
	m.m[u.Username] = &cp
	return nil
}

func (m *memUsers) ListActive() ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range m.m {
		if u.Active {
			cp := *u
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return out, nil
}

// fakeTx ejecuta el callback sobre los repos en memoria. Si el callback
// falla, restaura el estado previo: mismo contrato de rollback que la
// transacción real.
type fakeTx struct {
	orders   *memOrders
	items    *memItems
	products *memProducts
	states   *memStates
}

func (f *fakeTx) Run(_ context.Context, fn func(
	orders repository.OrderRepository,
	items repository.OrderItemRepository,
	products repository.ProductRepository,
	states repository.StateRepository,
) error) error {
	ordersSnap := snapshotOrders(f.orders)
	itemsSnap := snapshotItems(f.items)
	if err := fn(f.orders, f.items, f.products, f.states); err != nil {
		f.orders.m, f.orders.seq = ordersSnap.m, ordersSnap.seq
		f.items.m, f.items.seq = itemsSnap.m, itemsSnap.seq
		return err
	}
	return nil
}

type ordersSnapshot struct {
	m   map[int64]*entity.Order
	seq int64
}

func snapshotOrders(o *memOrders) ordersSnapshot {
	m := make(map[int64]*entity.Order, len(o.m))
	for k, v := range o.m {
		cp := *v
		m[k] = &cp
	}
	return ordersSnapshot{m: m, seq: o.seq}
}

type itemsSnapshot struct {
	m   map[int64]*entity.OrderItem
	seq int64
}

func snapshotItems(i *memItems) itemsSnapshot {
	m := make(map[int64]*entity.OrderItem, len(i.m))
	for k, v := range i.m {
		cp := *v
		m[k] = &cp
	}
	return itemsSnapshot{m: m, seq: i.seq}
}

// fixture junta los repos en memoria cableados entre sí.
type fixture struct {
	states   *memStates
	products *memProducts
	items    *memItems
	orders   *memOrders
	users    *memUsers
	tx       *fakeTx
}

func newFixture() *fixture {
	states := seededStates()
	products := newMemProducts()
	items := newMemItems()
	orders := newMemOrders(states, items)
	return &fixture{
		states:   states,
		products: products,
		items:    items,
		orders:   orders,
		users:    newMemUsers(),
		tx:       &fakeTx{orders: orders, items: items, products: products, states: states},
	}
}

// seedProduct agrega un producto disponible con el precio dado.
func (f *fixture) seedProduct(name string, price string, stock int) *entity.Product {
	p := &entity.Product{
		Name:   name,
		Price:  decimal.RequireFromString(price),
		Stock:  stock,
		Active: true,
	}
	_ = f.products.Create(p)
	return p
}
