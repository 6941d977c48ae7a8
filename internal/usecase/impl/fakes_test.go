package impl

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"strings"
	"time"

	"appcenar/internal/domain/entity"
	"appcenar/internal/domain/repository"
	"appcenar/internal/domain/service"

	"github.com/google/uuid"
)

// In-memory repository fakes backing the service tests. The whole store
// doubles as the RepositoryFactory and TransactionManager, so transactional
// code paths run against the same state as direct repository calls.

type fakeStore struct {
	accounts      *fakeAccountRepo
	businessTypes *fakeBusinessTypeRepo
	categories    *fakeCategoryRepo
	products      *fakeProductRepo
	addresses     *fakeAddressRepo
	favorites     *fakeFavoriteRepo
	orders        *fakeOrderRepo
	settings      *fakeSettingsRepo
	sessions      *fakeSessionRepo
}

func newFakeStore() *fakeStore {
	store := &fakeStore{
		accounts:      &fakeAccountRepo{byID: map[uuid.UUID]*entity.Account{}},
		businessTypes: &fakeBusinessTypeRepo{byID: map[uuid.UUID]*entity.BusinessType{}},
		categories:    &fakeCategoryRepo{byID: map[uuid.UUID]*entity.Category{}},
		products:      &fakeProductRepo{byID: map[uuid.UUID]*entity.Product{}},
		addresses:     &fakeAddressRepo{byID: map[uuid.UUID]*entity.Address{}},
		favorites:     &fakeFavoriteRepo{},
		orders:        &fakeOrderRepo{byID: map[uuid.UUID]*entity.Order{}},
		settings:      &fakeSettingsRepo{},
		sessions:      &fakeSessionRepo{byHash: map[string]*entity.Session{}},
	}
	store.businessTypes.accounts = store.accounts

	return store
}

// Execute implements repository.TransactionManager. The fakes have no real
// transactions; the callback simply runs against the shared state.
func (s *fakeStore) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(s)
}

func (s *fakeStore) NewAccountRepository() repository.AccountRepository           { return s.accounts }
func (s *fakeStore) NewBusinessTypeRepository() repository.BusinessTypeRepository { return s.businessTypes }
func (s *fakeStore) NewCategoryRepository() repository.CategoryRepository         { return s.categories }
func (s *fakeStore) NewProductRepository() repository.ProductRepository           { return s.products }
func (s *fakeStore) NewAddressRepository() repository.AddressRepository           { return s.addresses }
func (s *fakeStore) NewFavoriteRepository() repository.FavoriteRepository         { return s.favorites }
func (s *fakeStore) NewOrderRepository() repository.OrderRepository               { return s.orders }
func (s *fakeStore) NewSettingsRepository() repository.SettingsRepository         { return s.settings }
func (s *fakeStore) NewSessionRepository() repository.SessionRepository           { return s.sessions }

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// --- accounts ---

type fakeAccountRepo struct {
	byID map[uuid.UUID]*entity.Account
}

func cloneAccount(a *entity.Account) *entity.Account {
	if a == nil {
		return nil
	}
	clone := *a
	if a.MerchantProfile != nil {
		mp := *a.MerchantProfile
		clone.MerchantProfile = &mp
	}
	if a.CourierProfile != nil {
		cp := *a.CourierProfile
		clone.CourierProfile = &cp
	}

	return &clone
}

func (r *fakeAccountRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Account, error) {
	if account, ok := r.byID[id]; ok {
		return cloneAccount(account), nil
	}

	return nil, repository.ErrAccountNotFound
}

func (r *fakeAccountRepo) FindByEmail(_ context.Context, email string) (*entity.Account, error) {
	for _, account := range r.byID {
		if account.Email == email {
			return cloneAccount(account), nil
		}
	}

	return nil, repository.ErrAccountNotFound
}

func (r *fakeAccountRepo) FindByLogin(_ context.Context, login string) (*entity.Account, error) {
	for _, account := range r.byID {
		if account.Email == login || account.Username == login {
			return cloneAccount(account), nil
		}
	}

	return nil, repository.ErrAccountNotFound
}

func (r *fakeAccountRepo) FindByActivationToken(_ context.Context, token string) (*entity.Account, error) {
	if token == "" {
		return nil, repository.ErrAccountNotFound
	}
	for _, account := range r.byID {
		if account.ActivationToken == token {
			return cloneAccount(account), nil
		}
	}

	return nil, repository.ErrAccountNotFound
}

func (r *fakeAccountRepo) FindByResetToken(_ context.Context, token string) (*entity.Account, error) {
	if token == "" {
		return nil, repository.ErrAccountNotFound
	}
	for _, account := range r.byID {
		if account.ResetToken == token {
			return cloneAccount(account), nil
		}
	}

	return nil, repository.ErrAccountNotFound
}

func (r *fakeAccountRepo) FindByRole(_ context.Context, role entity.Role) ([]*entity.Account, error) {
	var result []*entity.Account
	for _, account := range r.byID {
		if account.Role == role {
			result = append(result, cloneAccount(account))
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID.String() < result[j].ID.String() })

	return result, nil
}

func (r *fakeAccountRepo) FindAvailableCourier(_ context.Context) (*entity.Account, error) {
	var candidates []*entity.Account
	for _, account := range r.byID {
		if account.Role == entity.RoleCourier && account.Active &&
			account.CourierProfile != nil && account.CourierProfile.Available {
			candidates = append(candidates, account)
		}
	}
	if len(candidates) == 0 {
		return nil, repository.ErrAccountNotFound
	}
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].CreatedAt.Before(candidates[j].CreatedAt)
	})

	return cloneAccount(candidates[0]), nil
}

func (r *fakeAccountRepo) FindActiveMerchantsByBusinessType(_ context.Context, businessTypeID uuid.UUID, search string) ([]*entity.Account, error) {
	var result []*entity.Account
	for _, account := range r.byID {
		if account.Role != entity.RoleMerchant || !account.Active || account.MerchantProfile == nil {
			continue
		}
		if account.MerchantProfile.BusinessTypeID != businessTypeID {
			continue
		}
		if search != "" && !strings.Contains(
			strings.ToLower(account.MerchantProfile.StoreName), strings.ToLower(search)) {
			continue
		}
		result = append(result, cloneAccount(account))
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].MerchantProfile.StoreName < result[j].MerchantProfile.StoreName
	})

	return result, nil
}

func (r *fakeAccountRepo) Create(_ context.Context, account *entity.Account) error {
	for _, existing := range r.byID {
		if existing.Email == account.Email || existing.Username == account.Username {
			return repository.ErrDuplicateAccount
		}
	}
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	if account.CreatedAt.IsZero() {
		account.CreatedAt = time.Now()
	}
	if account.MerchantProfile != nil {
		account.MerchantProfile.AccountID = account.ID
	}
	if account.CourierProfile != nil {
		account.CourierProfile.AccountID = account.ID
	}
	r.byID[account.ID] = cloneAccount(account)

	return nil
}

func (r *fakeAccountRepo) Update(_ context.Context, account *entity.Account) error {
	if _, ok := r.byID[account.ID]; !ok {
		return repository.ErrAccountNotFound
	}
	for _, existing := range r.byID {
		if existing.ID == account.ID {
			continue
		}
		if existing.Email == account.Email || existing.Username == account.Username {
			return repository.ErrDuplicateAccount
		}
	}
	r.byID[account.ID] = cloneAccount(account)

	return nil
}

func (r *fakeAccountRepo) SetCourierAvailability(_ context.Context, courierID uuid.UUID, available bool) error {
	account, ok := r.byID[courierID]
	if !ok || account.CourierProfile == nil {
		return repository.ErrAccountNotFound
	}
	account.CourierProfile.Available = available

	return nil
}

func (r *fakeAccountRepo) CountByRole(_ context.Context, role entity.Role) (int64, int64, error) {
	var active, inactive int64
	for _, account := range r.byID {
		if account.Role != role {
			continue
		}
		if account.Active {
			active++
		} else {
			inactive++
		}
	}

	return active, inactive, nil
}

// --- business types ---

type fakeBusinessTypeRepo struct {
	byID     map[uuid.UUID]*entity.BusinessType
	accounts *fakeAccountRepo
}

func (r *fakeBusinessTypeRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.BusinessType, error) {
	if bt, ok := r.byID[id]; ok {
		clone := *bt

		return &clone, nil
	}

	return nil, repository.ErrBusinessTypeNotFound
}

func (r *fakeBusinessTypeRepo) FindAll(_ context.Context) ([]*entity.BusinessType, error) {
	var result []*entity.BusinessType
	for _, bt := range r.byID {
		clone := *bt
		result = append(result, &clone)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })

	return result, nil
}

func (r *fakeBusinessTypeRepo) Create(_ context.Context, bt *entity.BusinessType) error {
	if bt.ID == uuid.Nil {
		bt.ID = uuid.New()
	}
	clone := *bt
	r.byID[bt.ID] = &clone

	return nil
}

func (r *fakeBusinessTypeRepo) Update(_ context.Context, bt *entity.BusinessType) error {
	if _, ok := r.byID[bt.ID]; !ok {
		return repository.ErrBusinessTypeNotFound
	}
	clone := *bt
	r.byID[bt.ID] = &clone

	return nil
}

func (r *fakeBusinessTypeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := r.byID[id]; !ok {
		return repository.ErrBusinessTypeNotFound
	}
	count, _ := r.CountMerchants(ctx, id)
	if count > 0 {
		return repository.ErrBusinessTypeInUse
	}
	delete(r.byID, id)

	return nil
}

func (r *fakeBusinessTypeRepo) CountMerchants(_ context.Context, id uuid.UUID) (int64, error) {
	var count int64
	for _, account := range r.accounts.byID {
		if account.MerchantProfile != nil && account.MerchantProfile.BusinessTypeID == id {
			count++
		}
	}

	return count, nil
}

// --- categories ---

type fakeCategoryRepo struct {
	byID map[uuid.UUID]*entity.Category
}

func (r *fakeCategoryRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Category, error) {
	if category, ok := r.byID[id]; ok {
		clone := *category

		return &clone, nil
	}

	return nil, repository.ErrCategoryNotFound
}

func (r *fakeCategoryRepo) FindByMerchant(_ context.Context, merchantID uuid.UUID) ([]*entity.Category, error) {
	var result []*entity.Category
	for _, category := range r.byID {
		if category.MerchantID == merchantID {
			clone := *category
			result = append(result, &clone)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })

	return result, nil
}

func (r *fakeCategoryRepo) Create(_ context.Context, category *entity.Category) error {
	if category.ID == uuid.Nil {
		category.ID = uuid.New()
	}
	clone := *category
	r.byID[category.ID] = &clone

	return nil
}

func (r *fakeCategoryRepo) Update(_ context.Context, category *entity.Category) error {
	if _, ok := r.byID[category.ID]; !ok {
		return repository.ErrCategoryNotFound
	}
	clone := *category
	r.byID[category.ID] = &clone

	return nil
}

func (r *fakeCategoryRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.byID[id]; !ok {
		return repository.ErrCategoryNotFound
	}
	delete(r.byID, id)

	return nil
}

func (r *fakeCategoryRepo) CountByMerchant(_ context.Context, merchantID uuid.UUID) (int64, error) {
	var count int64
	for _, category := range r.byID {
		if category.MerchantID == merchantID {
			count++
		}
	}

	return count, nil
}

// --- products ---

type fakeProductRepo struct {
	byID map[uuid.UUID]*entity.Product
}

func cloneProduct(p *entity.Product) *entity.Product {
	clone := *p
	if p.CategoryID != nil {
		id := *p.CategoryID
		clone.CategoryID = &id
	}

	return &clone
}

func (r *fakeProductRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Product, error) {
	if product, ok := r.byID[id]; ok {
		return cloneProduct(product), nil
	}

	return nil, repository.ErrProductNotFound
}

func (r *fakeProductRepo) FindByIDs(_ context.Context, ids []uuid.UUID) ([]*entity.Product, error) {
	var result []*entity.Product
	for _, id := range ids {
		if product, ok := r.byID[id]; ok {
			result = append(result, cloneProduct(product))
		}
	}

	return result, nil
}

func (r *fakeProductRepo) FindByMerchant(_ context.Context, merchantID uuid.UUID) ([]*entity.Product, error) {
	var result []*entity.Product
	for _, product := range r.byID {
		if product.MerchantID == merchantID {
			result = append(result, cloneProduct(product))
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })

	return result, nil
}

func (r *fakeProductRepo) Create(_ context.Context, product *entity.Product) error {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	r.byID[product.ID] = cloneProduct(product)

	return nil
}

func (r *fakeProductRepo) Update(_ context.Context, product *entity.Product) error {
	if _, ok := r.byID[product.ID]; !ok {
		return repository.ErrProductNotFound
	}
	r.byID[product.ID] = cloneProduct(product)

	return nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.byID[id]; !ok {
		return repository.ErrProductNotFound
	}
	delete(r.byID, id)

	return nil
}

func (r *fakeProductRepo) ClearCategory(_ context.Context, merchantID, categoryID uuid.UUID) error {
	for _, product := range r.byID {
		if product.MerchantID == merchantID && product.CategoryID != nil && *product.CategoryID == categoryID {
			product.CategoryID = nil
		}
	}

	return nil
}

func (r *fakeProductRepo) CountByMerchant(_ context.Context, merchantID uuid.UUID) (int64, error) {
	var count int64
	for _, product := range r.byID {
		if product.MerchantID == merchantID {
			count++
		}
	}

	return count, nil
}

func (r *fakeProductRepo) CountAll(_ context.Context) (int64, error) {
	return int64(len(r.byID)), nil
}

// --- addresses ---

type fakeAddressRepo struct {
	byID map[uuid.UUID]*entity.Address
}

func (r *fakeAddressRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Address, error) {
	if address, ok := r.byID[id]; ok {
		clone := *address

		return &clone, nil
	}

	return nil, repository.ErrAddressNotFound
}

func (r *fakeAddressRepo) FindByCustomer(_ context.Context, customerID uuid.UUID) ([]*entity.Address, error) {
	var result []*entity.Address
	for _, address := range r.byID {
		if address.CustomerID == customerID {
			clone := *address
			result = append(result, &clone)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Label < result[j].Label })

	return result, nil
}

func (r *fakeAddressRepo) Create(_ context.Context, address *entity.Address) error {
	if address.ID == uuid.Nil {
		address.ID = uuid.New()
	}
	clone := *address
	r.byID[address.ID] = &clone

	return nil
}

func (r *fakeAddressRepo) Update(_ context.Context, address *entity.Address) error {
	if _, ok := r.byID[address.ID]; !ok {
		return repository.ErrAddressNotFound
	}
	clone := *address
	r.byID[address.ID] = &clone

	return nil
}

func (r *fakeAddressRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.byID[id]; !ok {
		return repository.ErrAddressNotFound
	}
	delete(r.byID, id)

	return nil
}

// --- favorites ---

type fakeFavoriteRepo struct {
	items []*entity.Favorite
}

func (r *fakeFavoriteRepo) FindByCustomer(_ context.Context, customerID uuid.UUID) ([]*entity.Favorite, error) {
	var result []*entity.Favorite
	for _, favorite := range r.items {
		if favorite.CustomerID == customerID {
			clone := *favorite
			result = append(result, &clone)
		}
	}

	return result, nil
}

func (r *fakeFavoriteRepo) Exists(_ context.Context, customerID, merchantID uuid.UUID) (bool, error) {
	for _, favorite := range r.items {
		if favorite.CustomerID == customerID && favorite.MerchantID == merchantID {
			return true, nil
		}
	}

	return false, nil
}

func (r *fakeFavoriteRepo) Create(ctx context.Context, favorite *entity.Favorite) error {
	if exists, _ := r.Exists(ctx, favorite.CustomerID, favorite.MerchantID); exists {
		return nil
	}
	if favorite.ID == uuid.Nil {
		favorite.ID = uuid.New()
	}
	clone := *favorite
	r.items = append(r.items, &clone)

	return nil
}

func (r *fakeFavoriteRepo) Delete(_ context.Context, customerID, merchantID uuid.UUID) error {
	for i, favorite := range r.items {
		if favorite.CustomerID == customerID && favorite.MerchantID == merchantID {
			r.items = append(r.items[:i], r.items[i+1:]...)

			return nil
		}
	}

	return repository.ErrFavoriteNotFound
}

// --- orders ---

type fakeOrderRepo struct {
	byID map[uuid.UUID]*entity.Order
}

func cloneOrder(o *entity.Order) *entity.Order {
	clone := *o
	if o.CourierID != nil {
		id := *o.CourierID
		clone.CourierID = &id
	}
	clone.Items = make([]entity.OrderItem, len(o.Items))
	copy(clone.Items, o.Items)

	return &clone
}

func (r *fakeOrderRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Order, error) {
	if order, ok := r.byID[id]; ok {
		return cloneOrder(order), nil
	}

	return nil, repository.ErrOrderNotFound
}

func (r *fakeOrderRepo) findWhere(match func(*entity.Order) bool) []*entity.Order {
	var result []*entity.Order
	for _, order := range r.byID {
		if match(order) {
			result = append(result, cloneOrder(order))
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })

	return result
}

func (r *fakeOrderRepo) FindByCustomer(_ context.Context, customerID uuid.UUID) ([]*entity.Order, error) {
	return r.findWhere(func(o *entity.Order) bool { return o.CustomerID == customerID }), nil
}

func (r *fakeOrderRepo) FindByMerchant(_ context.Context, merchantID uuid.UUID) ([]*entity.Order, error) {
	return r.findWhere(func(o *entity.Order) bool { return o.MerchantID == merchantID }), nil
}

func (r *fakeOrderRepo) FindByCourier(_ context.Context, courierID uuid.UUID) ([]*entity.Order, error) {
	return r.findWhere(func(o *entity.Order) bool {
		return o.CourierID != nil && *o.CourierID == courierID
	}), nil
}

func (r *fakeOrderRepo) Create(_ context.Context, order *entity.Order) error {
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now()
	}
	for i := range order.Items {
		if order.Items[i].ID == uuid.Nil {
			order.Items[i].ID = uuid.New()
		}
		order.Items[i].OrderID = order.ID
	}
	r.byID[order.ID] = cloneOrder(order)

	return nil
}

func (r *fakeOrderRepo) Update(_ context.Context, order *entity.Order) error {
	existing, ok := r.byID[order.ID]
	if !ok {
		return repository.ErrOrderNotFound
	}
	existing.CourierID = order.CourierID
	existing.Status = order.Status

	return nil
}

func (r *fakeOrderRepo) CountAll(_ context.Context) (int64, error) {
	return int64(len(r.byID)), nil
}

func (r *fakeOrderRepo) CountSince(_ context.Context, since time.Time) (int64, error) {
	var count int64
	for _, order := range r.byID {
		if !order.CreatedAt.Before(since) {
			count++
		}
	}

	return count, nil
}

func (r *fakeOrderRepo) CountByMerchant(_ context.Context, merchantID uuid.UUID) (int64, error) {
	return int64(len(r.findWhere(func(o *entity.Order) bool { return o.MerchantID == merchantID }))), nil
}

func (r *fakeOrderRepo) CountByCustomer(_ context.Context, customerID uuid.UUID) (int64, error) {
	return int64(len(r.findWhere(func(o *entity.Order) bool { return o.CustomerID == customerID }))), nil
}

func (r *fakeOrderRepo) CountByCourier(_ context.Context, courierID uuid.UUID) (int64, error) {
	return int64(len(r.findWhere(func(o *entity.Order) bool {
		return o.CourierID != nil && *o.CourierID == courierID
	}))), nil
}

// --- settings ---

type fakeSettingsRepo struct {
	settings *entity.Settings
}

func (r *fakeSettingsRepo) Get(_ context.Context) (*entity.Settings, error) {
	if r.settings == nil {
		r.settings = &entity.Settings{ID: 1, TaxRate: entity.DefaultTaxRate}
	}
	clone := *r.settings

	return &clone, nil
}

func (r *fakeSettingsRepo) Update(_ context.Context, settings *entity.Settings) error {
	clone := *settings
	r.settings = &clone

	return nil
}

// --- sessions ---

type fakeSessionRepo struct {
	byHash map[string]*entity.Session
}

func (r *fakeSessionRepo) Create(_ context.Context, session *entity.Session) error {
	if session.ID == uuid.Nil {
		session.ID = uuid.New()
	}
	clone := *session
	r.byHash[session.TokenHash] = &clone

	return nil
}

func (r *fakeSessionRepo) FindByTokenHash(_ context.Context, tokenHash string) (*entity.Session, error) {
	session, ok := r.byHash[tokenHash]
	if !ok {
		return nil, repository.ErrSessionNotFound
	}
	if time.Now().After(session.ExpiresAt) {
		return nil, repository.ErrSessionExpired
	}
	clone := *session

	return &clone, nil
}

func (r *fakeSessionRepo) FindByAccount(_ context.Context, accountID uuid.UUID) ([]*entity.Session, error) {
	var result []*entity.Session
	for _, session := range r.byHash {
		if session.AccountID == accountID {
			clone := *session
			result = append(result, &clone)
		}
	}

	return result, nil
}

func (r *fakeSessionRepo) DeleteByTokenHash(_ context.Context, tokenHash string) error {
	if _, ok := r.byHash[tokenHash]; !ok {
		return repository.ErrSessionNotFound
	}
	delete(r.byHash, tokenHash)

	return nil
}

func (r *fakeSessionRepo) DeleteByAccount(_ context.Context, accountID uuid.UUID) error {
	for hash, session := range r.byHash {
		if session.AccountID == accountID {
			delete(r.byHash, hash)
		}
	}

	return nil
}

func (r *fakeSessionRepo) DeleteExpired(_ context.Context) error {
	for hash, session := range r.byHash {
		if time.Now().After(session.ExpiresAt) {
			delete(r.byHash, hash)
		}
	}

	return nil
}

// --- domain service fakes ---

type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakeHasher) Check(password, hash string) bool {
	return hash == "hashed:"+password
}

type fakeTokenService struct {
	counter int
}

func (s *fakeTokenService) GenerateTokens(account *entity.Account) (string, string, error) {
	s.counter++

	return "access-" + account.ID.String(),
		"refresh-" + account.ID.String() + "-" + uuid.New().String(), nil
}

func (s *fakeTokenService) ValidateToken(_ string) (*service.Claims, error) {
	return nil, repository.ErrSessionNotFound
}

func (s *fakeTokenService) HashToken(token string) string {
	return "h:" + token
}

func (s *fakeTokenService) GetRefreshTokenDuration() time.Duration {
	return time.Hour
}

type sentMail struct {
	To   string
	Name string
	URL  string
	Kind string
}

type fakeMailer struct {
	sent []sentMail
}

func (m *fakeMailer) SendActivation(_ context.Context, to, name, activationURL string) error {
	m.sent = append(m.sent, sentMail{To: to, Name: name, URL: activationURL, Kind: "activation"})

	return nil
}

func (m *fakeMailer) SendPasswordReset(_ context.Context, to, name, resetURL string) error {
	m.sent = append(m.sent, sentMail{To: to, Name: name, URL: resetURL, Kind: "reset"})

	return nil
}
