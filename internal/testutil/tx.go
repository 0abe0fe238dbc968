package testutil

import (
	"context"
	"sync"

	"github.com/jackc/pgx/v5"
)

// FakeTx 只實作 Commit / Rollback 的 pgx.Tx，搭配 repository mocks 使用；
// 其他方法沒有實作，被呼叫時會 panic
type FakeTx struct {
	pgx.Tx

	mu         sync.Mutex
	committed  bool
	rolledBack bool
	commitErr  error
	onEnd      []func()
}

// OnEnd 註冊 commit / rollback 後執行的函式，用來模擬 transaction 層級的 lock
func (t *FakeTx) OnEnd(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onEnd = append(t.onEnd, fn)
}

func (t *FakeTx) end() {
	for _, fn := range t.onEnd {
		fn()
	}
	t.onEnd = nil
}

func (t *FakeTx) Commit(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.committed || t.rolledBack {
		return pgx.ErrTxClosed
	}
	defer t.end()
	if t.commitErr != nil {
		t.rolledBack = true
		return t.commitErr
	}
	t.committed = true
	return nil
}

func (t *FakeTx) Rollback(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.committed || t.rolledBack {
		return pgx.ErrTxClosed
	}
	t.rolledBack = true
	t.end()
	return nil
}

func (t *FakeTx) Committed() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.committed
}

func (t *FakeTx) RolledBack() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.rolledBack
}

// FakeTxBeginner 每次 Begin 回傳新的 FakeTx，並保留下來供測試檢查
type FakeTxBeginner struct {
	mu        sync.Mutex
	txs       []*FakeTx
	BeginErr  error
	CommitErr error
}

func NewFakeTxBeginner() *FakeTxBeginner {
	return &FakeTxBeginner{}
}

func (b *FakeTxBeginner) Begin(ctx context.Context) (pgx.Tx, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.BeginErr != nil {
		return nil, b.BeginErr
	}
	tx := &FakeTx{commitErr: b.CommitErr}
	b.txs = append(b.txs, tx)
	return tx, nil
}

// Txs 依 Begin 順序回傳所有 transaction
func (b *FakeTxBeginner) Txs() []*FakeTx {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]*FakeTx(nil), b.txs...)
}

// CommitCount 已 commit 的 transaction 數
func (b *FakeTxBeginner) CommitCount() int {
	n := 0
	for _, tx := range b.Txs() {
		if tx.Committed() {
			n++
		}
	}
	return n
}
