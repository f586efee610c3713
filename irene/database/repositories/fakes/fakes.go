// Package fakes provides in-memory repository implementations for engine
// tests. They ignore the bun.IDB argument; the paired TxRunner invokes the
// transaction body directly.
package fakes

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/uptrace/bun"

	"github.com/lovequartz/irene/irene/database/models"
	"github.com/lovequartz/irene/irene/database/repositories"
)

var (
	_ repositories.CardRepository     = (*CardStore)(nil)
	_ repositories.UserRepository     = (*UserStore)(nil)
	_ repositories.UserCardRepository = (*UserCardStore)(nil)
	_ repositories.BagRepository      = (*BagStore)(nil)
	_ repositories.ShopRepository     = (*ShopStore)(nil)
	_ repositories.MarketRepository   = (*MarketStore)(nil)
	_ repositories.StateRepository    = (*StateStore)(nil)
)

// TxRunner runs the transaction body without a database.
type TxRunner struct{}

func (TxRunner) RunInTx(ctx context.Context, _ *sql.TxOptions, fn func(ctx context.Context, tx bun.Tx) error) error {
	return fn(ctx, bun.Tx{})
}

// CardStore is an in-memory CardRepository.
type CardStore struct {
	mu    sync.Mutex
	cards map[string]*models.Card
	order []string
}

func NewCardStore(cards ...*models.Card) *CardStore {
	s := &CardStore{cards: make(map[string]*models.Card)}
	for _, c := range cards {
		code := strings.ToUpper(c.Code)
		s.cards[code] = c
		s.order = append(s.order, code)
	}
	return s
}

func (s *CardStore) GetByCode(_ context.Context, code string) (*models.Card, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	card, ok := s.cards[strings.ToUpper(code)]
	if !ok {
		return nil, repositories.ErrCardNotFound
	}
	return card, nil
}

func (s *CardStore) GetAll(context.Context) ([]*models.Card, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*models.Card, 0, len(s.order))
	for _, code := range s.order {
		out = append(out, s.cards[code])
	}
	return out, nil
}

func (s *CardStore) GetByRarity(ctx context.Context, rarity string) ([]*models.Card, error) {
	all, _ := s.GetAll(ctx)
	var out []*models.Card
	for _, c := range all {
		if models.NormalizeRarity(c.Rarity) == models.NormalizeRarity(rarity) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *CardStore) Count(context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.cards), nil
}

func (s *CardStore) CreateMany(_ context.Context, cards []*models.Card) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, c := range cards {
		code := strings.ToUpper(c.Code)
		if _, ok := s.cards[code]; ok {
			continue
		}
		s.cards[code] = c
		s.order = append(s.order, code)
		n++
	}
	return n, nil
}

// UserStore is an in-memory UserRepository.
type UserStore struct {
	mu    sync.Mutex
	users map[string]models.User
}

func NewUserStore() *UserStore {
	return &UserStore{users: make(map[string]models.User)}
}

// Seed stores a user record directly.
func (s *UserStore) Seed(user models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.DiscordID] = user
}

// Snapshot returns the stored record, zero-valued when absent.
func (s *UserStore) Snapshot(discordID string) models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[discordID]
	if !ok {
		return models.User{DiscordID: discordID}
	}
	return u
}

func (s *UserStore) Get(_ context.Context, discordID string) (*models.User, error) {
	u := s.Snapshot(discordID)
	return &u, nil
}

func (s *UserStore) GetOrCreate(_ context.Context, _ bun.IDB, discordID string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[discordID]
	if !ok {
		u = models.User{DiscordID: discordID}
		s.users[discordID] = u
	}
	out := u
	return &out, nil
}

func (s *UserStore) Update(_ context.Context, _ bun.IDB, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.DiscordID] = *user
	return nil
}

// UserCardStore is an in-memory UserCardRepository.
type UserCardStore struct {
	mu     sync.Mutex
	counts map[string]map[string]int64
}

func NewUserCardStore() *UserCardStore {
	return &UserCardStore{counts: make(map[string]map[string]int64)}
}

// Seed sets an owned amount directly.
func (s *UserCardStore) Seed(userID, code string, amount int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.add(userID, strings.ToUpper(code), amount)
}

func (s *UserCardStore) add(userID, code string, delta int64) {
	if s.counts[userID] == nil {
		s.counts[userID] = make(map[string]int64)
	}
	s.counts[userID][code] += delta
}

func (s *UserCardStore) GetAmount(_ context.Context, _ bun.IDB, userID, code string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counts[userID][strings.ToUpper(code)], nil
}

func (s *UserCardStore) Add(_ context.Context, _ bun.IDB, userID, code string, qty int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.add(userID, strings.ToUpper(code), qty)
	return nil
}

func (s *UserCardStore) Remove(_ context.Context, _ bun.IDB, userID, code string, qty int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	code = strings.ToUpper(code)
	if s.counts[userID][code] < qty {
		return fmt.Errorf("owned amount below %d for %s", qty, code)
	}
	s.add(userID, code, -qty)
	return nil
}

func (s *UserCardStore) GetAllByUserID(_ context.Context, userID string) ([]*models.UserCard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*models.UserCard
	for code, amount := range s.counts[userID] {
		if amount > 0 {
			out = append(out, &models.UserCard{UserID: userID, CardCode: code, Amount: amount})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CardCode < out[j].CardCode })
	return out, nil
}

func (s *UserCardStore) TotalOwned(_ context.Context, userID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var total int64
	for _, amount := range s.counts[userID] {
		total += amount
	}
	return total, nil
}

// BagStore is an in-memory BagRepository.
type BagStore struct {
	mu   sync.Mutex
	bags map[string]*models.Bag
}

func NewBagStore() *BagStore {
	return &BagStore{bags: make(map[string]*models.Bag)}
}

func (s *BagStore) Get(_ context.Context, userID string) (*models.Bag, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copyOf(userID), nil
}

func (s *BagStore) GetOrCreate(_ context.Context, _ bun.IDB, userID string) (*models.Bag, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.bags[userID]; !ok {
		s.bags[userID] = &models.Bag{UserID: userID, Cards: make(map[string]int64)}
	}
	return s.copyOf(userID), nil
}

func (s *BagStore) Update(_ context.Context, _ bun.IDB, bag *models.Bag) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *bag
	clone.Cards = make(map[string]int64, len(bag.Cards))
	for code, count := range bag.Cards {
		clone.Cards[code] = count
	}
	s.bags[bag.UserID] = &clone
	return nil
}

func (s *BagStore) copyOf(userID string) *models.Bag {
	bag, ok := s.bags[userID]
	if !ok {
		return &models.Bag{UserID: userID, Cards: make(map[string]int64)}
	}
	clone := *bag
	clone.Cards = make(map[string]int64, len(bag.Cards))
	for code, count := range bag.Cards {
		clone.Cards[code] = count
	}
	return &clone
}

// ShopStore is an in-memory ShopRepository.
type ShopStore struct {
	mu    sync.Mutex
	state *models.ShopState
}

func NewShopStore() *ShopStore {
	return &ShopStore{}
}

func (s *ShopStore) Get(context.Context) (*models.ShopState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == nil {
		return &models.ShopState{}, nil
	}
	clone := *s.state
	clone.Items = append([]models.ShopItem(nil), s.state.Items...)
	return &clone, nil
}

func (s *ShopStore) Save(_ context.Context, state *models.ShopState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *state
	clone.Items = append([]models.ShopItem(nil), state.Items...)
	s.state = &clone
	return nil
}

// MarketStore is an in-memory MarketRepository.
type MarketStore struct {
	mu     sync.Mutex
	items  []*models.MarketItem
	nextID int64
}

func NewMarketStore() *MarketStore {
	return &MarketStore{nextID: 1}
}

func (s *MarketStore) GetBySeller(_ context.Context, _ bun.IDB, sellerID string) ([]*models.MarketItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*models.MarketItem
	for _, item := range s.items {
		if item.SellerID == sellerID {
			clone := *item
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (s *MarketStore) Insert(_ context.Context, _ bun.IDB, item *models.MarketItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *item
	clone.ID = s.nextID
	s.nextID++
	s.items = append(s.items, &clone)
	return nil
}

func (s *MarketStore) UpdateQuantity(_ context.Context, _ bun.IDB, id int64, quantity int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range s.items {
		if item.ID == id {
			item.Quantity = quantity
			return nil
		}
	}
	return fmt.Errorf("market item %d not found", id)
}

func (s *MarketStore) Delete(_ context.Context, _ bun.IDB, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, item := range s.items {
		if item.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("market item %d not found", id)
}

// StateStore is an in-memory StateRepository.
type StateStore struct {
	mu    sync.Mutex
	state models.BotState
}

func NewStateStore() *StateStore {
	return &StateStore{}
}

func (s *StateStore) Get(context.Context) (*models.BotState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.state
	return &out, nil
}

func (s *StateStore) IncrementDrops(context.Context, bun.IDB) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.TotalDrops++
	return s.state.TotalDrops, nil
}

func (s *StateStore) SetPaused(_ context.Context, paused bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Paused = paused
	return nil
}
