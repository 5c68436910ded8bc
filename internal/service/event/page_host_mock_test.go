package event

import (
	"context"
	"sync"
)

var _ pageHost = &pageHostMock{}

type pageHostMock struct {
	CreatePageFunc func(ctx context.Context, title string, parentID *string) (string, error)
	DeletePageFunc func(ctx context.Context, pageID string) error

	calls struct {
		CreatePage []struct {
			Ctx      context.Context
			Title    string
			ParentID *string
		}
		DeletePage []struct {
			Ctx    context.Context
			PageID string
		}
	}
	lockCreatePage sync.RWMutex
	lockDeletePage sync.RWMutex
}

func (mock *pageHostMock) CreatePage(ctx context.Context, title string, parentID *string) (string, error) {
	if mock.CreatePageFunc == nil {
		panic("pageHostMock.CreatePageFunc: method is nil but pageHost.CreatePage was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Title    string
		ParentID *string
	}{Ctx: ctx, Title: title, ParentID: parentID}
	mock.lockCreatePage.Lock()
	mock.calls.CreatePage = append(mock.calls.CreatePage, callInfo)
	mock.lockCreatePage.Unlock()
	return mock.CreatePageFunc(ctx, title, parentID)
}

func (mock *pageHostMock) CreatePageCalls() []struct {
	Ctx      context.Context
	Title    string
	ParentID *string
} {
	mock.lockCreatePage.RLock()
	calls := mock.calls.CreatePage
	mock.lockCreatePage.RUnlock()
	return calls
}

func (mock *pageHostMock) DeletePage(ctx context.Context, pageID string) error {
	if mock.DeletePageFunc == nil {
		panic("pageHostMock.DeletePageFunc: method is nil but pageHost.DeletePage was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		PageID string
	}{Ctx: ctx, PageID: pageID}
	mock.lockDeletePage.Lock()
	mock.calls.DeletePage = append(mock.calls.DeletePage, callInfo)
	mock.lockDeletePage.Unlock()
	return mock.DeletePageFunc(ctx, pageID)
}

func (mock *pageHostMock) DeletePageCalls() []struct {
	Ctx    context.Context
	PageID string
} {
	mock.lockDeletePage.RLock()
	calls := mock.calls.DeletePage
	mock.lockDeletePage.RUnlock()
	return calls
}
