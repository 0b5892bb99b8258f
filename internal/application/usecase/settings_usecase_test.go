package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockbit/stockbit-api/internal/application/dto"
	"github.com/stockbit/stockbit-api/internal/application/usecase"
	"github.com/stockbit/stockbit-api/internal/domain"
	"github.com/stockbit/stockbit-api/internal/domain/entity"
)

func strPtr(s string) *string { return &s }

func TestSettings_GetAutocreaDefaults(t *testing.T) {
	repo := newFakeSettingsRepo()
	uc := usecase.NewSettingsUseCase(repo, &fakePublisher{}, testLogger())

	resp, err := uc.Get("acc1")
	require.NoError(t, err)

	assert.Equal(t, "₦", resp.Currency)
	assert.Equal(t, entity.DefaultCategories, resp.Categories)
	assert.True(t, resp.LowStockEmailAlerts)

	persisted, _ := repo.GetByAccount("acc1")
	require.NotNil(t, persisted, "la primera lectura debe persistir los defaults")
}

func TestSettings_UpdateParcial(t *testing.T) {
	repo := newFakeSettingsRepo()
	pub := &fakePublisher{}
	uc := usecase.NewSettingsUseCase(repo, pub, testLogger())
	_, err := uc.Get("acc1")
	require.NoError(t, err)

	resp, err := uc.Update(context.Background(), "acc1", dto.UpdateSettingsRequest{
		Currency: strPtr("$"),
	})
	require.NoError(t, err)

	assert.Equal(t, "$", resp.Currency)
	assert.Equal(t, entity.DefaultCategories, resp.Categories, "los campos no enviados quedan intactos")
	require.Len(t, pub.events, 1)
	assert.Equal(t, "settings", pub.events[0].Event.Entity)
}

func TestSettings_UpdateCategoriasVaciasEsInvalido(t *testing.T) {
	uc := usecase.NewSettingsUseCase(newFakeSettingsRepo(), &fakePublisher{}, testLogger())

	empty := []string{}
	_, err := uc.Update(context.Background(), "acc1", dto.UpdateSettingsRequest{
		Categories: &empty,
	})

	assert.ErrorIs(t, err, domain.ErrInvalidInput, "el vocabulario nunca puede quedar vacío")
}

func TestSettings_AddCategoryIdempotente(t *testing.T) {
	repo := newFakeSettingsRepo()
	pub := &fakePublisher{}
	uc := usecase.NewSettingsUseCase(repo, pub, testLogger())

	resp, err := uc.AddCategory(context.Background(), "acc1", "Toys")
	require.NoError(t, err)
	assert.Contains(t, resp.Categories, "Toys")

	resp, err = uc.AddCategory(context.Background(), "acc1", "Toys")
	require.NoError(t, err)

	count := 0
	for _, c := range resp.Categories {
		if c == "Toys" {
			count++
		}
	}
	assert.Equal(t, 1, count, "agregar una categoría existente es no-op")
	assert.Len(t, pub.events, 1, "el no-op no publica evento")
}

func TestSettings_AddCategoryVaciaEsInvalido(t *testing.T) {
	uc := usecase.NewSettingsUseCase(newFakeSettingsRepo(), &fakePublisher{}, testLogger())

	_, err := uc.AddCategory(context.Background(), "acc1", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
