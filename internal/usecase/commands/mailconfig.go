package commands

import (
	"context"
	"strings"

	"eatery-api/internal/domain/notification"
	"eatery-api/internal/pkg/errs"
)

type SaveMailConfigInput struct {
	ServiceID  string
	TemplateID string
	AccountID  string
}

type MailConfigCommands interface {
	Save(ctx context.Context, input SaveMailConfigInput) error
}

type mailConfigCommandsImpl struct {
	repo MailConfigRepository
}

func NewMailConfigCommands(repo MailConfigRepository) MailConfigCommands {
	return &mailConfigCommandsImpl{repo: repo}
}

// Save persists the delivery credentials. All three identifiers are
// required; delivery stays in unconfigured mode until a complete set has
// been stored.
func (c *mailConfigCommandsImpl) Save(ctx context.Context, input SaveMailConfigInput) error {
	creds := notification.Credentials{
		ServiceID:  strings.TrimSpace(input.ServiceID),
		TemplateID: strings.TrimSpace(input.TemplateID),
		AccountID:  strings.TrimSpace(input.AccountID),
	}
	if !creds.Complete() {
		return errs.ErrMailConfigIncomplete
	}

	if err := c.repo.Save(ctx, creds); err != nil {
		return mapStoreErr(err)
	}
	return nil
}
