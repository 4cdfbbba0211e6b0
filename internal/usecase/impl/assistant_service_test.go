package impl

import (
	"context"
	"testing"

	"vora/internal/domain/entity"
	domainerrors "vora/internal/domain/errors"
	"vora/internal/domain/service"
	mockservice "vora/internal/mocks/service"
	"vora/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestAssistantService(t *testing.T) (usecase.AssistantUsecase, *mockservice.MockCopywriter, storeFixtures) {
	stores := newStoreFixtures()
	copywriter := mockservice.NewMockCopywriter(t)

	return NewAssistantService(stores.sessionRepo, copywriter, newDiscardLogger()), copywriter, stores
}

func TestAssistantService_DescribeProduct(t *testing.T) {
	assistant, copywriter, stores := createTestAssistantService(t)
	sid := stores.newSession(t)
	stores.signIn(t, sid, entity.AccountBusiness)

	copywriter.On("GenerateDescription", mock.Anything, "Onyx Cufflinks", "Male Collection").
		Return(service.FallbackEmptyDescription).Once()

	description, err := assistant.DescribeProduct(context.Background(), sid, " Onyx Cufflinks ", entity.CategoryMaleCollection)
	require.NoError(t, err)

	assert.Equal(t, service.FallbackEmptyDescription, description)
}

func TestAssistantService_SuggestPrice(t *testing.T) {
	assistant, copywriter, stores := createTestAssistantService(t)
	sid := stores.newSession(t)
	stores.signIn(t, sid, entity.AccountBusiness)

	copywriter.On("SuggestPrice", mock.Anything, "Pearl Choker", "Fine Jewelry").Return(875000.5).Once()

	price, err := assistant.SuggestPrice(context.Background(), sid, "Pearl Choker", entity.CategoryFineJewelry)
	require.NoError(t, err)

	assert.InDelta(t, 875000.5, price, 1e-9)
}

func TestAssistantService_Guards(t *testing.T) {
	assistant, _, stores := createTestAssistantService(t)
	ctx := context.Background()
	personal := stores.newSession(t)
	stores.signIn(t, personal, entity.AccountPersonal)
	business := stores.newSession(t)
	stores.signIn(t, business, entity.AccountBusiness)

	_, err := assistant.DescribeProduct(ctx, personal, "Ring", entity.CategoryFineJewelry)
	assert.True(t, errors.Is(err, domainerrors.ErrDashboardAccessDenied))

	_, err = assistant.SuggestPrice(ctx, personal, "Ring", entity.CategoryFineJewelry)
	assert.True(t, errors.Is(err, domainerrors.ErrDashboardAccessDenied))

	_, err = assistant.SuggestPrice(ctx, business, "Ring", entity.CategoryAll)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCategory))
}
