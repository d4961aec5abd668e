package payments

import (
	"os"

	midtransgo "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

// Service creates hosted payment sessions. The shopper is redirected to the
// gateway's page; no card data ever touches this service.
//
//go:generate mockgen -source=payments_service.go -destination=../mock/payments/payments_service_mock.go -package=mock
type Service interface {
	CreateCheckoutSession(req *CreateSessionRequest) (*CreateSessionResponse, error)
}

type service struct {
	client snap.Client
}

func NewService() Service {
	serverKey := os.Getenv("MIDTRANS_SERVER_KEY")
	isProduction := os.Getenv("MIDTRANS_IS_PRODUCTION") == "true"

	var env midtransgo.EnvironmentType
	if isProduction {
		env = midtransgo.Production
	} else {
		env = midtransgo.Sandbox
	}

	c := snap.Client{}
	c.New(serverKey, env)

	return &service{
		client: c,
	}
}

func (s *service) CreateCheckoutSession(req *CreateSessionRequest) (*CreateSessionResponse, error) {
	snapReq := &snap.Request{
		TransactionDetails: midtransgo.TransactionDetails{
			OrderID:  req.OrderID,
			GrossAmt: req.GrossAmount,
		},
	}
	if req.Customer != nil {
		snapReq.CustomerDetail = &midtransgo.CustomerDetails{
			FName: req.Customer.FirstName,
			LName: req.Customer.LastName,
			Email: req.Customer.Email,
			Phone: req.Customer.Phone,
		}
	}
	if req.Shipping != nil {
		if snapReq.CustomerDetail == nil {
			snapReq.CustomerDetail = &midtransgo.CustomerDetails{}
		}
		line := req.Shipping.Line1
		if req.Shipping.Line2 != "" {
			line += ", " + req.Shipping.Line2
		}
		shipAddr := &midtransgo.CustomerAddress{
			Address:     line,
			City:        req.Shipping.City,
			Postcode:    req.Shipping.Postcode,
			CountryCode: req.Shipping.Country,
		}
		if req.Customer != nil {
			shipAddr.FName = req.Customer.FirstName
			shipAddr.LName = req.Customer.LastName
			shipAddr.Phone = req.Customer.Phone
		}
		snapReq.CustomerDetail.ShipAddr = shipAddr
	}

	var items []midtransgo.ItemDetails
	for _, item := range req.Items {
		items = append(items, midtransgo.ItemDetails{
			ID:    item.ID,
			Price: item.Price,
			Qty:   item.Qty,
			Name:  item.Name,
		})
	}
	snapReq.Items = &items

	snapResp, err := s.client.CreateTransaction(snapReq)
	if err != nil {
		return nil, err
	}

	return &CreateSessionResponse{
		SessionID:   req.OrderID,
		Token:       snapResp.Token,
		RedirectURL: snapResp.RedirectURL,
	}, nil
}
