// Package mocks provides testify mocks for the controller interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/softwarewrighter/sw-checklist/internal/controller"
	m "github.com/softwarewrighter/sw-checklist/internal/model"
)

// MockUI is a mock implementation of controller.UI.
type MockUI struct {
	mock.Mock
}

// NewMockUI creates a mock and registers expectation checks on cleanup.
func NewMockUI(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUI {
	mockUI := &MockUI{}
	mockUI.Test(t)

	t.Cleanup(func() { mockUI.AssertExpectations(t) })

	return mockUI
}

// Start provides a mock function.
func (_m *MockUI) Start(ctx context.Context, options ...controller.StartOption) error {
	args := []interface{}{ctx}
	for _, o := range options {
		args = append(args, o)
	}

	ret := _m.Called(args...)

	return ret.Error(0)
}

// Close provides a mock function.
func (_m *MockUI) Close(ctx context.Context) {
	_m.Called(ctx)
}

// DisplayHeader provides a mock function.
func (_m *MockUI) DisplayHeader(ctx context.Context, header controller.Header) {
	_m.Called(ctx, header)
}

// DisplayUnitDone provides a mock function.
func (_m *MockUI) DisplayUnitDone(ctx context.Context, unit m.Unit) {
	_m.Called(ctx, unit)
}

// DisplayResults provides a mock function.
func (_m *MockUI) DisplayResults(ctx context.Context, results []m.CheckResult, summary m.Summary) error {
	ret := _m.Called(ctx, results, summary)

	return ret.Error(0)
}

// DisplayUnits provides a mock function.
func (_m *MockUI) DisplayUnits(ctx context.Context, units []m.Unit) error {
	ret := _m.Called(ctx, units)

	return ret.Error(0)
}
