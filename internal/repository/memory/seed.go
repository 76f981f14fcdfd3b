package memory

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/leeeeeeeed/real-estate-list-app/internal/domain"
	"github.com/leeeeeeeed/real-estate-list-app/internal/domain/repository"
	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var defaultSeed []byte

type seedFile struct {
	Properties []seedProperty `yaml:"properties"`
}

type seedProperty struct {
	ID              string             `yaml:"id"`
	Title           string             `yaml:"title"`
	Address         string             `yaml:"address"`
	PropertyType    string             `yaml:"property_type"`
	TransactionType string             `yaml:"transaction_type"`
	Price           int64              `yaml:"price"`
	Deposit         *int64             `yaml:"deposit"`
	MonthlyRent     *int64             `yaml:"monthly_rent"`
	Area            float64            `yaml:"area"`
	Floor           string             `yaml:"floor"`
	Description     string             `yaml:"description"`
	Coordinates     domain.Coordinates `yaml:"coordinates"`
	CreatedAt       string             `yaml:"created_at"`
}

// LoadSeed читает объявления из YAML-файла; пустой путь - встроенный набор
func LoadSeed(path string) ([]*domain.Property, error) {
	data := defaultSeed
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read seed file: %w", err)
		}
		data = b
	}
	return ParseSeed(data)
}

// ParseSeed разбирает YAML с объявлениями в порядке файла
func ParseSeed(data []byte) ([]*domain.Property, error) {
	var file seedFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse seed: %w", err)
	}

	result := make([]*domain.Property, 0, len(file.Properties))
	for i, sp := range file.Properties {
		p, err := sp.toDomain()
		if err != nil {
			return nil, fmt.Errorf("seed property #%d: %w", i, err)
		}
		result = append(result, p)
	}
	return result, nil
}

func (sp seedProperty) toDomain() (*domain.Property, error) {
	deal, err := domain.NewDeal(domain.TransactionType(sp.TransactionType), sp.Price, sp.Deposit, sp.MonthlyRent)
	if err != nil {
		return nil, err
	}

	id := sp.ID
	if id == "" {
		id = uuid.NewString()
	}

	createdAt := time.Now()
	if sp.CreatedAt != "" {
		createdAt, err = time.Parse("2006-01-02", sp.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("invalid created_at: %w", err)
		}
	}

	var floor *string
	if sp.Floor != "" {
		f := sp.Floor
		floor = &f
	}

	p := &domain.Property{
		ID: id,
		PropertyData: domain.PropertyData{
			Title:       sp.Title,
			Address:     sp.Address,
			Description: sp.Description,
			Type:        domain.PropertyType(sp.PropertyType),
			Deal:        deal,
			Area:        sp.Area,
			Floor:       floor,
			Coordinates: sp.Coordinates,
		},
		CreatedAt: createdAt,
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Seed добавляет объявления так, чтобы порядок в store совпал с порядком в списке
func Seed(ctx context.Context, repo repository.PropertyRepository, properties []*domain.Property) error {
	for i := len(properties) - 1; i >= 0; i-- {
		if _, err := repo.Add(ctx, properties[i]); err != nil {
			return fmt.Errorf("failed to seed property %s: %w", properties[i].ID, err)
		}
	}
	return nil
}
