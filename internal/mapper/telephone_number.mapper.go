package mapper

import "github.com/nimasrn/customer-billing/internal/model"

func NewTelephoneNumber(customerID int64, req model.TelephoneNumberDetailsRequest) *model.TelephoneNumber {
	return &model.TelephoneNumber{
		CustomerID: customerID,
		Type:       req.Type,
		Number:     req.Number,
	}
}

func ApplyTelephoneNumberUpdate(p *model.TelephoneNumber, req model.TelephoneNumberDetailsRequest) {
	p.Type = req.Type
	p.Number = req.Number
}

func ToTelephoneNumberResponse(p *model.TelephoneNumber) model.TelephoneNumberResponse {
	return model.TelephoneNumberResponse{
		ID:         p.ID,
		CustomerID: p.CustomerID,
		Type:       p.Type,
		Number:     p.Number,
	}
}

func ToTelephoneNumberResponses(numbers []*model.TelephoneNumber) []model.TelephoneNumberResponse {
	out := make([]model.TelephoneNumberResponse, 0, len(numbers))
	for _, p := range numbers {
		if p != nil {
			out = append(out, ToTelephoneNumberResponse(p))
		}
	}
	return out
}
