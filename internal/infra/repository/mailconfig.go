package repository

import (
	"context"
	"encoding/json"

	"eatery-api/internal/domain/notification"
	"eatery-api/internal/infra"
	"eatery-api/internal/infra/kv"
)

// MailConfigKey is the storage key holding the delivery credentials the
// admin panel configures at runtime.
const MailConfigKey = "emailjs-config"

type storedMailConfig struct {
	ServiceID  string `json:"serviceId"`
	TemplateID string `json:"templateId"`
	AccountID  string `json:"accountId"`
}

type MailConfigRepository struct {
	store kv.Store
}

func NewMailConfigRepository(store kv.Store) *MailConfigRepository {
	return &MailConfigRepository{store: store}
}

// Load returns the configured credentials. found is false in the documented
// "unconfigured" mode, which is not an error.
func (r *MailConfigRepository) Load(ctx context.Context) (notification.Credentials, bool, error) {
	raw, found, err := r.store.Get(ctx, MailConfigKey)
	if err != nil {
		return notification.Credentials{}, false, err
	}
	if !found {
		return notification.Credentials{}, false, nil
	}

	var stored storedMailConfig
	if err := json.Unmarshal(raw, &stored); err != nil {
		return notification.Credentials{}, false, infra.WrapRepoErr(infra.KindCorruptState, "mail configuration failed to parse", err)
	}

	return notification.Credentials{
		ServiceID:  stored.ServiceID,
		TemplateID: stored.TemplateID,
		AccountID:  stored.AccountID,
	}, true, nil
}

func (r *MailConfigRepository) Save(ctx context.Context, creds notification.Credentials) error {
	raw, err := json.Marshal(storedMailConfig{
		ServiceID:  creds.ServiceID,
		TemplateID: creds.TemplateID,
		AccountID:  creds.AccountID,
	})
	if err != nil {
		return infra.WrapRepoErr(infra.KindStoreFailure, "failed to serialize mail configuration", err)
	}

	return r.store.Put(ctx, MailConfigKey, raw)
}
