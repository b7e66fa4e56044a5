package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/pos_billing_app/internal/apperrors"
	"github.com/SscSPs/pos_billing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_billing_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pos_billing_app/internal/core/ports/services"
	"github.com/SscSPs/pos_billing_app/internal/core/services"
	"github.com/SscSPs/pos_billing_app/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type InventoryServiceTestSuite struct {
	suite.Suite
	repo *MockProductRepository
	svc  portssvc.InventorySvcFacade
	tx   *fakeTx
	ctx  context.Context
}

func (s *InventoryServiceTestSuite) SetupTest() {
	s.repo = new(MockProductRepository)
	s.svc = services.NewInventoryService(s.repo, d("5"))
	s.tx = &fakeTx{}
	s.ctx = context.Background()
}

func (s *InventoryServiceTestSuite) expectTx() {
	s.repo.On("Begin", mock.Anything).Return(s.tx, nil).Once()
	s.repo.On("Rollback", mock.Anything, s.tx).Return(nil).Once()
}

func (s *InventoryServiceTestSuite) TestCreateProduct_WithOpeningStock() {
	gst18 := "tr-18"
	s.repo.On("ListTaxRates", mock.Anything).Return([]domain.TaxRate{
		{TaxRateID: "tr-0", Label: "0%", Rate: d("0")},
		{TaxRateID: gst18, Label: "18%", Rate: d("18")},
	}, nil).Once()
	s.expectTx()
	s.repo.On("SaveProductInTx", mock.Anything, s.tx, mock.MatchedBy(func(p domain.Product) bool {
		return p.Name == "Soap" && p.TaxRate.Equal(d("18")) && p.Unit == "pcs" &&
			p.Stock.Equal(d("24")) && p.LowStockQty.Equal(d("5")) && p.IsActive && p.CreatedBy == "owner"
	})).Return(nil).Once()
	s.repo.On("AppendInventoryLogsInTx", mock.Anything, s.tx, mock.MatchedBy(func(logs []domain.InventoryLog) bool {
		return len(logs) == 1 && logs[0].Reason == domain.ReasonPurchase && logs[0].ChangeQty.Equal(d("24"))
	})).Return(nil).Once()
	s.repo.On("Commit", mock.Anything, s.tx).Return(nil).Once()

	product, err := s.svc.CreateProduct(s.ctx, dto.CreateProductRequest{
		Name: "Soap", TaxRateID: &gst18, SellPrice: d("33.33"), OpeningStock: d("24"),
	}, "owner")

	s.Require().NoError(err)
	s.NotEmpty(product.ProductID)
	s.repo.AssertExpectations(s.T())
}

func (s *InventoryServiceTestSuite) TestCreateProduct_NoOpeningStockNoLog() {
	s.expectTx()
	s.repo.On("SaveProductInTx", mock.Anything, s.tx, mock.Anything).Return(nil).Once()
	s.repo.On("Commit", mock.Anything, s.tx).Return(nil).Once()

	_, err := s.svc.CreateProduct(s.ctx, dto.CreateProductRequest{Name: "Loose Sugar", Unit: "kg", SellPrice: d("44")}, "owner")

	s.Require().NoError(err)
	s.repo.AssertNotCalled(s.T(), "AppendInventoryLogsInTx", mock.Anything, mock.Anything, mock.Anything)
}

func (s *InventoryServiceTestSuite) TestCreateProduct_UnknownTaxRate() {
	unknown := "tr-99"
	s.repo.On("ListTaxRates", mock.Anything).Return([]domain.TaxRate{}, nil).Once()

	_, err := s.svc.CreateProduct(s.ctx, dto.CreateProductRequest{Name: "Soap", TaxRateID: &unknown, SellPrice: d("10")}, "owner")

	s.ErrorIs(err, apperrors.ErrValidation)
	s.repo.AssertNotCalled(s.T(), "Begin", mock.Anything)
}

func (s *InventoryServiceTestSuite) TestCreateProduct_DuplicateBarcode() {
	barcode := "8901234567890"
	s.expectTx()
	s.repo.On("SaveProductInTx", mock.Anything, s.tx, mock.Anything).Return(apperrors.ErrDuplicate).Once()

	_, err := s.svc.CreateProduct(s.ctx, dto.CreateProductRequest{Name: "Soap", Barcode: &barcode, SellPrice: d("10")}, "owner")

	s.ErrorIs(err, apperrors.ErrDuplicate)
	s.repo.AssertNotCalled(s.T(), "Commit", mock.Anything, mock.Anything)
}

func (s *InventoryServiceTestSuite) TestAdjustStock() {
	s.expectTx()
	s.repo.On("AdjustStocksInTx", mock.Anything, s.tx, mock.MatchedBy(func(deltas []portsrepo.StockDelta) bool {
		return len(deltas) == 1 && deltas[0].ProductID == "p1" && deltas[0].Delta.Equal(d("-3"))
	})).Return(nil).Once()
	s.repo.On("AppendInventoryLogsInTx", mock.Anything, s.tx, mock.MatchedBy(func(logs []domain.InventoryLog) bool {
		return len(logs) == 1 && logs[0].Reason == domain.ReasonDamage && logs[0].InvoiceID == nil
	})).Return(nil).Once()
	s.repo.On("Commit", mock.Anything, s.tx).Return(nil).Once()

	entry, err := s.svc.AdjustStock(s.ctx, "p1", dto.AdjustStockRequest{Delta: dp("-3"), Reason: domain.ReasonDamage}, "owner")

	s.Require().NoError(err)
	s.True(entry.ChangeQty.Equal(d("-3")))
	s.repo.AssertExpectations(s.T())
}

func (s *InventoryServiceTestSuite) TestAdjustStock_Rejections() {
	_, err := s.svc.AdjustStock(s.ctx, "p1", dto.AdjustStockRequest{Delta: dp("-3"), Reason: domain.ReasonSale}, "owner")
	s.ErrorIs(err, apperrors.ErrValidation)

	_, err = s.svc.AdjustStock(s.ctx, "p1", dto.AdjustStockRequest{Delta: dp("0"), Reason: domain.ReasonAdjustment}, "owner")
	s.ErrorIs(err, apperrors.ErrValidation)

	_, err = s.svc.AdjustStock(s.ctx, "p1", dto.AdjustStockRequest{Reason: domain.ReasonAdjustment}, "owner")
	s.ErrorIs(err, apperrors.ErrValidation)

	_, err = s.svc.AdjustStock(s.ctx, "p1", dto.AdjustStockRequest{Delta: dp("0.0004"), Reason: domain.ReasonPurchase}, "owner")
	s.ErrorIs(err, apperrors.ErrValidation)

	s.repo.AssertNotCalled(s.T(), "Begin", mock.Anything)
}

func (s *InventoryServiceTestSuite) TestAdjustStock_UnknownProduct() {
	s.expectTx()
	s.repo.On("AdjustStocksInTx", mock.Anything, s.tx, mock.Anything).Return(apperrors.ErrNotFound).Once()

	_, err := s.svc.AdjustStock(s.ctx, "ghost", dto.AdjustStockRequest{Delta: dp("5"), Reason: domain.ReasonPurchase}, "owner")

	s.ErrorIs(err, apperrors.ErrNotFound)
	s.repo.AssertNotCalled(s.T(), "AppendInventoryLogsInTx", mock.Anything, mock.Anything, mock.Anything)
}

func (s *InventoryServiceTestSuite) TestListProducts_BarcodeSearch() {
	s.repo.On("FindProductByBarcode", mock.Anything, "8901234567890").Return(rice(), nil).Once()

	products, err := s.svc.ListProducts(s.ctx, dto.ListProductsParams{Search: "8901234567890", Limit: 50})

	s.Require().NoError(err)
	s.Len(products, 1)
	s.repo.AssertNotCalled(s.T(), "ListProducts", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *InventoryServiceTestSuite) TestListProducts_UnknownBarcodeFallsBackToSearch() {
	s.repo.On("FindProductByBarcode", mock.Anything, "12345678").Return(nil, apperrors.ErrNotFound).Once()
	s.repo.On("ListProducts", mock.Anything, "12345678", 50, 0).Return([]domain.Product{}, nil).Once()

	products, err := s.svc.ListProducts(s.ctx, dto.ListProductsParams{Search: "12345678", Limit: 50})

	s.Require().NoError(err)
	s.Empty(products)
}

func (s *InventoryServiceTestSuite) TestFindByBarcode_NotABarcode() {
	_, err := s.svc.FindByBarcode(s.ctx, "rice")

	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *InventoryServiceTestSuite) TestCreateProduct_RejectsUnstorableValues() {
	tests := []struct {
		name string
		req  dto.CreateProductRequest
	}{
		{name: "no sell price", req: dto.CreateProductRequest{Name: "Soap"}},
		{name: "opening stock too fine", req: dto.CreateProductRequest{Name: "Soap", SellPrice: d("10"), OpeningStock: d("1.0005")}},
		{name: "negative threshold", req: dto.CreateProductRequest{Name: "Soap", SellPrice: d("10"), LowStockQty: dp("-1")}},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := s.svc.CreateProduct(s.ctx, tt.req, "owner")
			s.ErrorIs(err, apperrors.ErrValidation)
		})
	}
	s.repo.AssertNotCalled(s.T(), "Begin", mock.Anything)
}

func TestInventoryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InventoryServiceTestSuite))
}
