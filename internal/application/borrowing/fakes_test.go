package borrowing

import (
	"context"
	"sync"

	"github.com/xiebiao/library/internal/domain/book"
	"github.com/xiebiao/library/internal/domain/borrowing"
	"github.com/xiebiao/library/internal/domain/member"
)

// fakeStore 共享的内存数据库
// 所有仓储操作持store.mu,模拟行级一致性
type fakeStore struct {
	mu              sync.Mutex
	books           map[uint]*book.Book
	members         map[uint]*member.Member
	borrowings      map[uint]*borrowing.Borrowing
	nextBorrowingID uint
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		books:           make(map[uint]*book.Book),
		members:         make(map[uint]*member.Member),
		borrowings:      make(map[uint]*borrowing.Borrowing),
		nextBorrowingID: 1,
	}
}

func (s *fakeStore) addBook(b *book.Book) {
	cp := *b
	s.books[b.ID] = &cp
}

func (s *fakeStore) addMember(m *member.Member) {
	cp := *m
	s.members[m.ID] = &cp
}

// snapshot 深拷贝全部数据(事务回滚用)
func (s *fakeStore) snapshot() *fakeStore {
	snap := newFakeStore()
	snap.nextBorrowingID = s.nextBorrowingID
	for id, b := range s.books {
		cp := *b
		snap.books[id] = &cp
	}
	for id, m := range s.members {
		cp := *m
		snap.members[id] = &cp
	}
	for id, bw := range s.borrowings {
		cp := *bw
		snap.borrowings[id] = &cp
	}
	return snap
}

func (s *fakeStore) restore(snap *fakeStore) {
	s.books = snap.books
	s.members = snap.members
	s.borrowings = snap.borrowings
	s.nextBorrowingID = snap.nextBorrowingID
}

// fakeTxRunner 事务执行器:整个事务持txMu串行执行,
// fn返回error时恢复快照,模拟ROLLBACK
type fakeTxRunner struct {
	txMu  sync.Mutex
	store *fakeStore
}

func (r *fakeTxRunner) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	r.txMu.Lock()
	defer r.txMu.Unlock()

	r.store.mu.Lock()
	snap := r.store.snapshot()
	r.store.mu.Unlock()

	if err := fn(ctx); err != nil {
		r.store.mu.Lock()
		r.store.restore(snap)
		r.store.mu.Unlock()
		return err
	}
	return nil
}

// fakeBookRepo 图书仓储(基于fakeStore)
type fakeBookRepo struct {
	store *fakeStore
}

func (r *fakeBookRepo) FindByID(_ context.Context, id uint) (*book.Book, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	b, ok := r.store.books[id]
	if !ok {
		return nil, book.ErrBookNotFound
	}
	cp := *b
	return &cp, nil
}

func (r *fakeBookRepo) LockByID(ctx context.Context, id uint) (*book.Book, error) {
	return r.FindByID(ctx, id)
}

func (r *fakeBookRepo) UpdateStock(_ context.Context, id uint, delta int) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	b, ok := r.store.books[id]
	if !ok {
		return book.ErrBookNotFound
	}
	if b.Stock+delta < 0 {
		return book.ErrOutOfStock
	}
	b.Stock += delta
	return nil
}

func (r *fakeBookRepo) Create(_ context.Context, _ *book.Book) error           { return nil }
func (r *fakeBookRepo) FindByTitle(_ context.Context, _ string) (*book.Book, error) {
	return nil, book.ErrBookNotFound
}
func (r *fakeBookRepo) FindByISBN(_ context.Context, _ string) (*book.Book, error) {
	return nil, book.ErrBookNotFound
}
func (r *fakeBookRepo) Update(_ context.Context, _ *book.Book) error           { return nil }
func (r *fakeBookRepo) Delete(_ context.Context, _ uint) error                 { return nil }
func (r *fakeBookRepo) List(_ context.Context) ([]*book.Book, error)           { return nil, nil }
func (r *fakeBookRepo) CountByAuthorID(_ context.Context, _ uint) (int64, error) {
	return 0, nil
}
func (r *fakeBookRepo) CountByCategoryID(_ context.Context, _ uint) (int64, error) {
	return 0, nil
}

// fakeMemberRepo 会员仓储(基于fakeStore)
type fakeMemberRepo struct {
	store *fakeStore
}

func (r *fakeMemberRepo) FindByID(_ context.Context, id uint) (*member.Member, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	m, ok := r.store.members[id]
	if !ok {
		return nil, member.ErrMemberNotFound
	}
	cp := *m
	return &cp, nil
}

func (r *fakeMemberRepo) Create(_ context.Context, _ *member.Member) error { return nil }
func (r *fakeMemberRepo) FindByPhone(_ context.Context, _ string) (*member.Member, error) {
	return nil, member.ErrMemberNotFound
}
func (r *fakeMemberRepo) FindByEmail(_ context.Context, _ string) (*member.Member, error) {
	return nil, member.ErrMemberNotFound
}
func (r *fakeMemberRepo) Update(_ context.Context, _ *member.Member) error { return nil }
func (r *fakeMemberRepo) Delete(_ context.Context, _ uint) error           { return nil }
func (r *fakeMemberRepo) List(_ context.Context) ([]*member.Member, error) { return nil, nil }

// fakeBorrowingRepo 借阅仓储(基于fakeStore)
// failCreate为true时Create返回错误,用于验证事务回滚
type fakeBorrowingRepo struct {
	store      *fakeStore
	failCreate error
}

func (r *fakeBorrowingRepo) Create(_ context.Context, b *borrowing.Borrowing) error {
	if r.failCreate != nil {
		return r.failCreate
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	b.ID = r.store.nextBorrowingID
	r.store.nextBorrowingID++
	cp := *b
	r.store.borrowings[b.ID] = &cp
	return nil
}

func (r *fakeBorrowingRepo) FindByID(_ context.Context, id uint) (*borrowing.Borrowing, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	bw, ok := r.store.borrowings[id]
	if !ok {
		return nil, borrowing.ErrBorrowingNotFound
	}
	cp := *bw
	return &cp, nil
}

func (r *fakeBorrowingRepo) LockByID(ctx context.Context, id uint) (*borrowing.Borrowing, error) {
	return r.FindByID(ctx, id)
}

func (r *fakeBorrowingRepo) Update(_ context.Context, b *borrowing.Borrowing) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.borrowings[b.ID]; !ok {
		return borrowing.ErrBorrowingNotFound
	}
	cp := *b
	r.store.borrowings[b.ID] = &cp
	return nil
}

func (r *fakeBorrowingRepo) Delete(_ context.Context, id uint) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.borrowings[id]; !ok {
		return borrowing.ErrBorrowingNotFound
	}
	delete(r.store.borrowings, id)
	return nil
}

func (r *fakeBorrowingRepo) List(_ context.Context) ([]*borrowing.Borrowing, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	list := make([]*borrowing.Borrowing, 0, len(r.store.borrowings))
	for _, bw := range r.store.borrowings {
		cp := *bw
		list = append(list, &cp)
	}
	return list, nil
}

func (r *fakeBorrowingRepo) CountByBookID(_ context.Context, bookID uint) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var count int64
	for _, bw := range r.store.borrowings {
		if bw.BookID == bookID {
			count++
		}
	}
	return count, nil
}

func (r *fakeBorrowingRepo) CountByMemberID(_ context.Context, memberID uint) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var count int64
	for _, bw := range r.store.borrowings {
		if bw.MemberID == memberID {
			count++
		}
	}
	return count, nil
}

// testEnv 测试环境:一套store与全部仓储/用例
type testEnv struct {
	store         *fakeStore
	bookRepo      *fakeBookRepo
	memberRepo    *fakeMemberRepo
	borrowingRepo *fakeBorrowingRepo
	tx            *fakeTxRunner
}

func newTestEnv() *testEnv {
	store := newFakeStore()
	return &testEnv{
		store:         store,
		bookRepo:      &fakeBookRepo{store: store},
		memberRepo:    &fakeMemberRepo{store: store},
		borrowingRepo: &fakeBorrowingRepo{store: store},
		tx:            &fakeTxRunner{store: store},
	}
}
