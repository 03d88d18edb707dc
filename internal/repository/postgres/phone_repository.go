package postgres

import (
	"context"
	"fmt"

	"phoneFinder/business/catalog"
	"phoneFinder/domain"

	"gorm.io/gorm"
)

// CREATE TABLE public.phones (
//     model           TEXT PRIMARY KEY,
//     price           NUMERIC NOT NULL,
//     ram             NUMERIC NOT NULL,
//     storage         NUMERIC NOT NULL,
//     rating          NUMERIC NOT NULL,
//     usage           TEXT NOT NULL,
//     amazon_price    NUMERIC NOT NULL,
//     flipkart_price  NUMERIC NOT NULL,
//     croma_price     NUMERIC NOT NULL,
//     amazon_link     TEXT,
//     flipkart_link   TEXT,
//     croma_link      TEXT
// );

type phoneRow struct {
	Model         string  `gorm:"column:model;primaryKey"`
	Price         float64 `gorm:"column:price;type:numeric"`
	RAM           float64 `gorm:"column:ram;type:numeric"`
	Storage       float64 `gorm:"column:storage;type:numeric"`
	Rating        float64 `gorm:"column:rating;type:numeric"`
	Usage         string  `gorm:"column:usage;type:text"`
	AmazonPrice   float64 `gorm:"column:amazon_price;type:numeric"`
	FlipkartPrice float64 `gorm:"column:flipkart_price;type:numeric"`
	CromaPrice    float64 `gorm:"column:croma_price;type:numeric"`
	AmazonLink    string  `gorm:"column:amazon_link;type:text"`
	FlipkartLink  string  `gorm:"column:flipkart_link;type:text"`
	CromaLink     string  `gorm:"column:croma_link;type:text"`
}

func (phoneRow) TableName() string {
	return "phones"
}

func (r phoneRow) toDomain() domain.Phone {
	return domain.Phone{
		Model:   r.Model,
		Price:   r.Price,
		RAM:     r.RAM,
		Storage: r.Storage,
		Rating:  r.Rating,
		Usage:   r.Usage,
		Retailers: map[string]domain.RetailerOffer{
			domain.RetailerAmazon:   {Price: r.AmazonPrice, Link: r.AmazonLink},
			domain.RetailerFlipkart: {Price: r.FlipkartPrice, Link: r.FlipkartLink},
			domain.RetailerCroma:    {Price: r.CromaPrice, Link: r.CromaLink},
		},
	}
}

// PhoneRepository reads the catalog table. It is only used once, at startup.
type PhoneRepository struct {
	DB *gorm.DB
}

var _ catalog.Source = (*PhoneRepository)(nil)

func NewPhoneRepository(db *gorm.DB) *PhoneRepository {
	return &PhoneRepository{
		DB: db,
	}
}

func (r *PhoneRepository) LoadPhones(ctx context.Context) ([]domain.Phone, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var rows []phoneRow
	err := r.DB.WithContext(ctx).Order("model").Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("%w: failed to find phones: %w", domain.ErrDataLoad, err)
	}

	phones := make([]domain.Phone, 0, len(rows))
	for _, row := range rows {
		phones = append(phones, row.toDomain())
	}

	return phones, nil
}
