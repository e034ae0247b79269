package response

import "eatery-api/internal/usecase/queries"

type MailConfigResponse struct {
	ServiceID  string `json:"serviceId"`
	TemplateID string `json:"templateId"`
	AccountID  string `json:"accountId"`
	Configured bool   `json:"configured"`
}

func FromMailConfigView(rm *queries.MailConfigView) *MailConfigResponse {
	return &MailConfigResponse{
		ServiceID:  rm.ServiceID,
		TemplateID: rm.TemplateID,
		AccountID:  rm.AccountID,
		Configured: rm.Configured,
	}
}
