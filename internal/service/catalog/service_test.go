package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DetailingStudio/internal/domain"
	catalogRepo "github.com/m04kA/SMC-DetailingStudio/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-DetailingStudio/internal/service/catalog/models"
	"github.com/m04kA/SMC-DetailingStudio/pkg/logger"
	"github.com/m04kA/SMC-DetailingStudio/pkg/ptr"
)

type fakeCatalogRepo struct {
	services []*domain.Service
}

func (f *fakeCatalogRepo) find(name string) int {
	for i, s := range f.services {
		if s.Name == name {
			return i
		}
	}
	return -1
}

func (f *fakeCatalogRepo) List(ctx context.Context, visibleOnly bool) ([]*domain.Service, error) {
	var result []*domain.Service
	for _, s := range f.services {
		if visibleOnly && !s.IsVisible {
			continue
		}
		result = append(result, s)
	}
	return result, nil
}

func (f *fakeCatalogRepo) GetByName(ctx context.Context, name string) (*domain.Service, error) {
	if i := f.find(name); i >= 0 {
		return f.services[i], nil
	}
	return nil, catalogRepo.ErrServiceNotFound
}

func (f *fakeCatalogRepo) Create(ctx context.Context, s *domain.Service) (*domain.Service, error) {
	if f.find(s.Name) >= 0 {
		return nil, catalogRepo.ErrServiceExists
	}
	f.services = append(f.services, s)
	return s, nil
}

func (f *fakeCatalogRepo) Update(ctx context.Context, name string, s *domain.Service) (*domain.Service, error) {
	i := f.find(name)
	if i < 0 {
		return nil, catalogRepo.ErrServiceNotFound
	}
	if s.Name != name && f.find(s.Name) >= 0 {
		return nil, catalogRepo.ErrServiceExists
	}
	f.services[i] = s
	return s, nil
}

func (f *fakeCatalogRepo) SetVisibility(ctx context.Context, name string, visible bool) error {
	i := f.find(name)
	if i < 0 {
		return catalogRepo.ErrServiceNotFound
	}
	f.services[i].IsVisible = visible
	return nil
}

func (f *fakeCatalogRepo) Delete(ctx context.Context, name string) error {
	i := f.find(name)
	if i < 0 {
		return catalogRepo.ErrServiceNotFound
	}
	f.services = append(f.services[:i], f.services[i+1:]...)
	return nil
}

func newService() (*Service, *fakeCatalogRepo) {
	repo := &fakeCatalogRepo{services: []*domain.Service{
		{Name: "Ceramic Coating", PriceText: "From 1,200 PLN", IsVisible: true},
		{Name: "Hidden Special", PriceText: "99 PLN", IsVisible: false},
	}}
	return NewService(repo, logger.Nop()), repo
}

func TestList(t *testing.T) {
	svc, _ := newService()

	all, err := svc.List(context.Background(), false)
	require.NoError(t, err)
	assert.Len(t, all.Services, 2)

	visible, err := svc.List(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, visible.Services, 1)
	assert.Equal(t, int64(1200), visible.Services[0].PriceValue)
	assert.NotNil(t, visible.Services[0].Details)
}

func TestCreate(t *testing.T) {
	svc, repo := newService()

	resp, err := svc.Create(context.Background(), &models.ServiceRequest{Name: "  Interior Detail ", Price: "360 PLN"})
	require.NoError(t, err)
	assert.Equal(t, "Interior Detail", resp.Name)
	assert.True(t, resp.IsVisible)
	assert.Len(t, repo.services, 3)

	_, err = svc.Create(context.Background(), &models.ServiceRequest{Name: "Ceramic Coating"})
	assert.ErrorIs(t, err, ErrServiceExists)

	_, err = svc.Create(context.Background(), &models.ServiceRequest{Name: " "})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdate(t *testing.T) {
	svc, _ := newService()

	resp, err := svc.Update(context.Background(), "Ceramic Coating", &models.ServiceRequest{
		Name:      "Ceramic Coating Pro",
		Price:     "From 1,500 PLN",
		IsVisible: ptr.Ptr(false),
	})
	require.NoError(t, err)
	assert.Equal(t, "Ceramic Coating Pro", resp.Name)
	assert.False(t, resp.IsVisible)

	_, err = svc.Update(context.Background(), "Missing", &models.ServiceRequest{Name: "X"})
	assert.ErrorIs(t, err, ErrServiceNotFound)

	_, err = svc.Update(context.Background(), "Ceramic Coating Pro", &models.ServiceRequest{Name: "Hidden Special"})
	assert.ErrorIs(t, err, ErrServiceExists)
}

func TestSetVisibilityAndDelete(t *testing.T) {
	svc, _ := newService()

	resp, err := svc.SetVisibility(context.Background(), "Hidden Special", true)
	require.NoError(t, err)
	assert.True(t, resp.IsVisible)

	_, err = svc.SetVisibility(context.Background(), "Missing", true)
	assert.ErrorIs(t, err, ErrServiceNotFound)

	require.NoError(t, svc.Delete(context.Background(), "Hidden Special"))
	assert.ErrorIs(t, svc.Delete(context.Background(), "Hidden Special"), ErrServiceNotFound)
}
