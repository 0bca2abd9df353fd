package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"conduit/internal/model"
)

func TestTagService_List(t *testing.T) {
	tags := new(MockTagRepository)
	svc := NewTagService(tags, nil)

	tags.On("List", testCtx()).Return([]model.Tag{
		{ID: 1, Name: "dragons"},
		{ID: 2, Name: "coffee"},
	}, nil)

	names, err := svc.List(testCtx())
	assert.NoError(t, err)
	assert.Equal(t, []string{"dragons", "coffee"}, names)
}

func testCtx() context.Context {
	return context.Background()
}
