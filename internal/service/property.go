package service

import (
	"context"

	"tikang-admin/internal/events"
	"tikang-admin/internal/models"
	"tikang-admin/internal/view"
)

type PropertyAPI interface {
	ListProperties(ctx context.Context) ([]models.Property, error)
	VerifyProperty(ctx context.Context, propertyID int64) error
	DeleteProperty(ctx context.Context, propertyID int64) error
}

type PropertyService struct {
	api  PropertyAPI
	core *Core
}

func NewPropertyService(api PropertyAPI, core *Core) *PropertyService {
	return &PropertyService{api: api, core: core}
}

func (s *PropertyService) List(ctx context.Context) ([]models.Property, error) {
	properties, err := s.api.ListProperties(ctx)
	if err != nil {
		return nil, err
	}
	return view.SortPropertiesByNewest(properties), nil
}

func (s *PropertyService) Verify(ctx context.Context, propertyID int64) ([]models.Property, error) {
	m := mutation{
		action:  "verify_property",
		target:  "property",
		id:      propertyID,
		prompt:  "Mark this property as verified?",
		success: "Property verified.",
		event:   events.EventPropertyVerified,
	}
	err := s.core.run(ctx, m, func(ctx context.Context) error {
		return s.api.VerifyProperty(ctx, propertyID)
	})
	if err != nil {
		return nil, err
	}
	return s.List(ctx)
}

func (s *PropertyService) Delete(ctx context.Context, propertyID int64) ([]models.Property, error) {
	m := mutation{
		action:  "delete_property",
		target:  "property",
		id:      propertyID,
		prompt:  "This will permanently delete the property. Continue?",
		success: "Property deleted.",
		event:   events.EventPropertyDeleted,
	}
	err := s.core.run(ctx, m, func(ctx context.Context) error {
		return s.api.DeleteProperty(ctx, propertyID)
	})
	if err != nil {
		return nil, err
	}
	return s.List(ctx)
}
