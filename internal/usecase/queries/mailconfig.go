package queries

import (
	"context"

	"eatery-api/internal/domain/notification"
)

type MailConfigView struct {
	ServiceID  string `json:"serviceId"`
	TemplateID string `json:"templateId"`
	AccountID  string `json:"accountId"`
	Configured bool   `json:"configured"`
}

type MailConfigSource interface {
	Load(ctx context.Context) (notification.Credentials, bool, error)
}

type MailConfigQueries interface {
	Get(ctx context.Context) (*MailConfigView, error)
}

type mailConfigQueriesImpl struct {
	source MailConfigSource
}

func NewMailConfigQueries(source MailConfigSource) MailConfigQueries {
	return &mailConfigQueriesImpl{source: source}
}

func (q *mailConfigQueriesImpl) Get(ctx context.Context) (*MailConfigView, error) {
	creds, found, err := q.source.Load(ctx)
	if err != nil {
		return nil, mapReadErr(err)
	}

	return &MailConfigView{
		ServiceID:  creds.ServiceID,
		TemplateID: creds.TemplateID,
		AccountID:  creds.AccountID,
		Configured: found && creds.Complete(),
	}, nil
}
