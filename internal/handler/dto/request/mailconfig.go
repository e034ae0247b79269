package request

import "eatery-api/internal/usecase/commands"

type SaveMailConfigRequest struct {
	ServiceID  string `json:"serviceId" binding:"required"`
	TemplateID string `json:"templateId" binding:"required"`
	AccountID  string `json:"accountId" binding:"required"`
}

func (r SaveMailConfigRequest) ToInput() commands.SaveMailConfigInput {
	return commands.SaveMailConfigInput{
		ServiceID:  r.ServiceID,
		TemplateID: r.TemplateID,
		AccountID:  r.AccountID,
	}
}
