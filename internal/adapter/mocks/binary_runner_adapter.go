// Package mocks provides testify mocks for the adapter interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	m "github.com/softwarewrighter/sw-checklist/internal/model"
)

// MockBinaryRunnerAdapter is a mock implementation of adapter.BinaryRunnerAdapter.
type MockBinaryRunnerAdapter struct {
	mock.Mock
}

// NewMockBinaryRunnerAdapter creates a mock and registers expectation checks on cleanup.
func NewMockBinaryRunnerAdapter(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockBinaryRunnerAdapter {
	mockRunner := &MockBinaryRunnerAdapter{}
	mockRunner.Test(t)

	t.Cleanup(func() { mockRunner.AssertExpectations(t) })

	return mockRunner
}

// Run provides a mock function.
func (_m *MockBinaryRunnerAdapter) Run(ctx context.Context, binary m.Path, args ...string) (string, error) {
	callArgs := []interface{}{ctx, binary}
	for _, a := range args {
		callArgs = append(callArgs, a)
	}

	ret := _m.Called(callArgs...)

	if fn, ok := ret.Get(0).(func(context.Context, m.Path, ...string) (string, error)); ok {
		return fn(ctx, binary, args...)
	}

	return ret.String(0), ret.Error(1)
}
