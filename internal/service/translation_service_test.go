package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/heversonalves/canon/internal/dto"
	"github.com/heversonalves/canon/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeInvalidator struct {
	invalidated []string
}

func (f *fakeInvalidator) InvalidateTranslation(translation string) {
	f.invalidated = append(f.invalidated, translation)
}

func TestTranslationUploadInvalidatesCache(t *testing.T) {
	factory := newFakeFactory()
	invalidator := &fakeInvalidator{}
	svc := NewTranslationService(factory, invalidator)

	summary, err := svc.Upload(context.Background(), &dto.TranslationUploadRequest{
		Id:           "NVT",
		Name:         "Nova Versão Transformadora",
		Abbreviation: "NVT",
		Data:         json.RawMessage(`{"books": {}}`),
	})
	require.NoError(t, err)

	assert.Equal(t, "NVT", summary.Id)
	assert.Equal(t, []string{"NVT"}, invalidator.invalidated)
	require.NotNil(t, factory.uow.translations.store["NVT"])
}

func TestTranslationDeleteInvalidatesCache(t *testing.T) {
	factory := newFakeFactory()
	factory.uow.translations.store["NVT"] = &entity.BibleTranslation{Id: "NVT"}
	invalidator := &fakeInvalidator{}
	svc := NewTranslationService(factory, invalidator)

	require.NoError(t, svc.Delete(context.Background(), "NVT"))

	assert.Equal(t, []string{"NVT"}, invalidator.invalidated)
	assert.Nil(t, factory.uow.translations.store["NVT"])
}

func TestTranslationGetData(t *testing.T) {
	factory := newFakeFactory()
	factory.uow.translations.store["NVT"] = &entity.BibleTranslation{
		Id:   "NVT",
		Data: []byte(`{"books": {}}`),
	}
	svc := NewTranslationService(factory, nil)

	data, err := svc.GetData(context.Background(), "NVT")
	require.NoError(t, err)
	assert.JSONEq(t, `{"books": {}}`, string(data))

	_, err = svc.GetData(context.Background(), "NVI")
	assert.ErrorIs(t, err, ErrTranslationNotFound)
}
