package account

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metadomain "github.com/zeroum/adset-insights-api/infrastructure/integrator/meta/domain"
	"github.com/zeroum/adset-insights-api/infrastructure/integrator/meta/mocks"
	"go.uber.org/mock/gomock"
)

func TestListAccountOptions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	service := NewService(mockClient)

	mockClient.EXPECT().
		ListAdAccounts(gomock.Any(), "token").
		Return([]metadomain.AdAccount{
			{ID: "act_2", Name: "Loja B"},
			{ID: "act_1", Name: "Loja A"},
		}, nil)

	options, err := service.ListAccountOptions(context.Background(), "token")
	require.NoError(t, err)
	require.Len(t, options, 2)

	// {id, name} vira {value, label}, ordenado por label.
	assert.Equal(t, "act_1", options[0].Value)
	assert.Equal(t, "Loja A", options[0].Label)
	assert.Equal(t, "act_2", options[1].Value)
	assert.Equal(t, "Loja B", options[1].Label)
}

func TestListAccountOptions_ErroDoCliente(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	service := NewService(mockClient)

	mockClient.EXPECT().
		ListAdAccounts(gomock.Any(), "token").
		Return(nil, assert.AnError)

	options, err := service.ListAccountOptions(context.Background(), "token")

	assert.Error(t, err)
	assert.Nil(t, options)
}
