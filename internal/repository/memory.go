package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/Tiri0n/abkhazia-tax-service/internal/model"
)

// MemoryStore is an in-memory implementation of every repository interface.
// It is the default backing store when no DATABASE_URL is configured: one
// id -> record map per entity kind plus a monotonic counter for id assignment.
// All state is process-local and discarded on exit.
//
// Gin serves requests concurrently, so unlike a single-threaded event loop the
// maps need explicit locking; one RWMutex guards the whole store. Per-kind
// accessors (Users, Obligations, ...) expose the store behind the same
// interfaces the Postgres repositories implement.
type MemoryStore struct {
	mu sync.RWMutex

	users         map[int64]model.User
	obligations   map[int64]model.TaxObligation
	payments      map[int64]model.Payment
	documents     map[int64]model.Document
	notifications map[int64]model.Notification
	inquiries     map[int64]model.Inquiry
	refreshTokens map[string]model.RefreshToken

	userSeq         int64
	obligationSeq   int64
	paymentSeq      int64
	documentSeq     int64
	notificationSeq int64
	inquirySeq      int64
	tokenSeq        int64
}

// NewMemoryStore returns an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:         make(map[int64]model.User),
		obligations:   make(map[int64]model.TaxObligation),
		payments:      make(map[int64]model.Payment),
		documents:     make(map[int64]model.Document),
		notifications: make(map[int64]model.Notification),
		inquiries:     make(map[int64]model.Inquiry),
		refreshTokens: make(map[string]model.RefreshToken),
	}
}

// Users returns the user view of the store
func (s *MemoryStore) Users() UserRepository { return memoryUsers{s} }

// Obligations returns the tax-obligation view of the store
func (s *MemoryStore) Obligations() ObligationRepository { return memoryObligations{s} }

// Payments returns the payment view of the store
func (s *MemoryStore) Payments() PaymentRepository { return memoryPayments{s} }

// Documents returns the document view of the store
func (s *MemoryStore) Documents() DocumentRepository { return memoryDocuments{s} }

// Notifications returns the notification view of the store
func (s *MemoryStore) Notifications() NotificationRepository { return memoryNotifications{s} }

// Inquiries returns the inquiry view of the store
func (s *MemoryStore) Inquiries() InquiryRepository { return memoryInquiries{s} }

// Tokens returns the refresh-token view of the store
func (s *MemoryStore) Tokens() TokenRepository { return memoryTokens{s} }

// --- Users ---

type memoryUsers struct{ s *MemoryStore }

func (m memoryUsers) Create(ctx context.Context, user *model.User) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	m.s.userSeq++
	user.ID = m.s.userSeq
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	m.s.users[user.ID] = *user
	return nil
}

func (m memoryUsers) GetByID(ctx context.Context, id int64) (*model.User, error) {
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()
	user, ok := m.s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &user, nil
}

func (m memoryUsers) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()
	for _, user := range m.s.users {
		if user.Username == username {
			u := user
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (m memoryUsers) GetByTaxID(ctx context.Context, taxID string) (*model.User, error) {
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()
	for _, user := range m.s.users {
		if user.TaxID == taxID {
			u := user
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (m memoryUsers) Update(ctx context.Context, user *model.User) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if _, ok := m.s.users[user.ID]; !ok {
		return ErrNotFound
	}
	m.s.users[user.ID] = *user
	return nil
}

// --- Tax obligations ---

type memoryObligations struct{ s *MemoryStore }

func (m memoryObligations) Create(ctx context.Context, obligation *model.TaxObligation) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	m.s.obligationSeq++
	obligation.ID = m.s.obligationSeq
	m.s.obligations[obligation.ID] = *obligation
	return nil
}

func (m memoryObligations) GetByID(ctx context.Context, id int64) (*model.TaxObligation, error) {
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()
	obligation, ok := m.s.obligations[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &obligation, nil
}

func (m memoryObligations) ListForUser(ctx context.Context, userID int64) ([]model.TaxObligation, error) {
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()
	obligations := make([]model.TaxObligation, 0)
	for _, obligation := range m.s.obligations {
		if obligation.UserID == userID {
			obligations = append(obligations, obligation)
		}
	}
	// ids are monotonic, so ascending id equals insertion order
	sort.Slice(obligations, func(i, j int) bool { return obligations[i].ID < obligations[j].ID })
	return obligations, nil
}

func (m memoryObligations) ListUpcomingForUser(ctx context.Context, userID int64, now time.Time) ([]model.TaxObligation, error) {
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()
	obligations := make([]model.TaxObligation, 0)
	for _, obligation := range m.s.obligations {
		if obligation.UserID == userID && obligation.DueDate.After(now) && obligation.Status == model.ObligationPending {
			obligations = append(obligations, obligation)
		}
	}
	sort.Slice(obligations, func(i, j int) bool { return obligations[i].DueDate.Before(obligations[j].DueDate) })
	return obligations, nil
}

func (m memoryObligations) Update(ctx context.Context, obligation *model.TaxObligation) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if _, ok := m.s.obligations[obligation.ID]; !ok {
		return ErrNotFound
	}
	m.s.obligations[obligation.ID] = *obligation
	return nil
}

// --- Payments ---

type memoryPayments struct{ s *MemoryStore }

func (m memoryPayments) Create(ctx context.Context, payment *model.Payment) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	m.s.paymentSeq++
	payment.ID = m.s.paymentSeq
	if payment.Date.IsZero() {
		payment.Date = time.Now()
	}
	m.s.payments[payment.ID] = *payment
	return nil
}

func (m memoryPayments) GetByID(ctx context.Context, id int64) (*model.Payment, error) {
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()
	payment, ok := m.s.payments[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &payment, nil
}

func (m memoryPayments) ListForUser(ctx context.Context, userID int64) ([]model.Payment, error) {
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()
	payments := make([]model.Payment, 0)
	for _, payment := range m.s.payments {
		if payment.UserID == userID {
			payments = append(payments, payment)
		}
	}
	sort.Slice(payments, func(i, j int) bool {
		if !payments[i].Date.Equal(payments[j].Date) {
			return payments[i].Date.After(payments[j].Date)
		}
		return payments[i].ID > payments[j].ID
	})
	return payments, nil
}

// --- Documents ---

type memoryDocuments struct{ s *MemoryStore }

func (m memoryDocuments) Create(ctx context.Context, document *model.Document) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	m.s.documentSeq++
	document.ID = m.s.documentSeq
	if document.UploadDate.IsZero() {
		document.UploadDate = time.Now()
	}
	m.s.documents[document.ID] = *document
	return nil
}

func (m memoryDocuments) GetByID(ctx context.Context, id int64) (*model.Document, error) {
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()
	document, ok := m.s.documents[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &document, nil
}

func (m memoryDocuments) ListForUser(ctx context.Context, userID int64) ([]model.Document, error) {
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()
	documents := make([]model.Document, 0)
	for _, document := range m.s.documents {
		if document.UserID == userID {
			documents = append(documents, document)
		}
	}
	sort.Slice(documents, func(i, j int) bool {
		if !documents[i].UploadDate.Equal(documents[j].UploadDate) {
			return documents[i].UploadDate.After(documents[j].UploadDate)
		}
		return documents[i].ID > documents[j].ID
	})
	return documents, nil
}

// --- Notifications ---

type memoryNotifications struct{ s *MemoryStore }

func (m memoryNotifications) Create(ctx context.Context, notification *model.Notification) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	m.s.notificationSeq++
	notification.ID = m.s.notificationSeq
	if notification.Date.IsZero() {
		notification.Date = time.Now()
	}
	m.s.notifications[notification.ID] = *notification
	return nil
}

func (m memoryNotifications) GetByID(ctx context.Context, id int64) (*model.Notification, error) {
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()
	notification, ok := m.s.notifications[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &notification, nil
}

func (m memoryNotifications) ListForUser(ctx context.Context, userID int64) ([]model.Notification, error) {
	return m.list(userID, false)
}

func (m memoryNotifications) ListUnreadForUser(ctx context.Context, userID int64) ([]model.Notification, error) {
	return m.list(userID, true)
}

func (m memoryNotifications) list(userID int64, unreadOnly bool) ([]model.Notification, error) {
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()
	notifications := make([]model.Notification, 0)
	for _, notification := range m.s.notifications {
		if notification.UserID != userID {
			continue
		}
		if unreadOnly && notification.Read {
			continue
		}
		notifications = append(notifications, notification)
	}
	sort.Slice(notifications, func(i, j int) bool {
		if !notifications[i].Date.Equal(notifications[j].Date) {
			return notifications[i].Date.After(notifications[j].Date)
		}
		return notifications[i].ID > notifications[j].ID
	})
	return notifications, nil
}

func (m memoryNotifications) MarkRead(ctx context.Context, id int64) (*model.Notification, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	notification, ok := m.s.notifications[id]
	if !ok {
		return nil, ErrNotFound
	}
	notification.Read = true
	m.s.notifications[id] = notification
	return &notification, nil
}

// --- Inquiries ---

type memoryInquiries struct{ s *MemoryStore }

func (m memoryInquiries) Create(ctx context.Context, inquiry *model.Inquiry) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	m.s.inquirySeq++
	inquiry.ID = m.s.inquirySeq
	if inquiry.Date.IsZero() {
		inquiry.Date = time.Now()
	}
	if inquiry.SupportDocuments == nil {
		inquiry.SupportDocuments = model.StringList{}
	}
	m.s.inquiries[inquiry.ID] = *inquiry
	return nil
}

func (m memoryInquiries) GetByID(ctx context.Context, id int64) (*model.Inquiry, error) {
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()
	inquiry, ok := m.s.inquiries[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &inquiry, nil
}

func (m memoryInquiries) ListForUser(ctx context.Context, userID int64) ([]model.Inquiry, error) {
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()
	inquiries := make([]model.Inquiry, 0)
	for _, inquiry := range m.s.inquiries {
		if inquiry.UserID == userID {
			inquiries = append(inquiries, inquiry)
		}
	}
	sort.Slice(inquiries, func(i, j int) bool {
		if !inquiries[i].Date.Equal(inquiries[j].Date) {
			return inquiries[i].Date.After(inquiries[j].Date)
		}
		return inquiries[i].ID > inquiries[j].ID
	})
	return inquiries, nil
}

func (m memoryInquiries) UpdateStatus(ctx context.Context, id int64, status string) (*model.Inquiry, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	inquiry, ok := m.s.inquiries[id]
	if !ok {
		return nil, ErrNotFound
	}
	inquiry.Status = status
	m.s.inquiries[id] = inquiry
	return &inquiry, nil
}

// --- Refresh tokens ---

type memoryTokens struct{ s *MemoryStore }

func (m memoryTokens) Create(ctx context.Context, token *model.RefreshToken) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	m.s.tokenSeq++
	token.ID = m.s.tokenSeq
	if token.CreatedAt.IsZero() {
		token.CreatedAt = time.Now()
	}
	m.s.refreshTokens[token.Token] = *token
	return nil
}

func (m memoryTokens) GetByToken(ctx context.Context, token string) (*model.RefreshToken, error) {
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()
	rt, ok := m.s.refreshTokens[token]
	if !ok {
		return nil, ErrNotFound
	}
	return &rt, nil
}

func (m memoryTokens) Delete(ctx context.Context, token string) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	delete(m.s.refreshTokens, token)
	return nil
}
