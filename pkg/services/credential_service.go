package services

import (
	"context"
	"fmt"
	"time"

	"github.com/crewforge/crewd/ent"
	"github.com/crewforge/crewd/ent/credential"
	"github.com/crewforge/crewd/pkg/llm"
	"github.com/crewforge/crewd/pkg/vault"
)

// redactedValue is what list/read endpoints return in place of a secret.
const redactedValue = "••••••••"

// CredentialView is a credential with its value redacted.
type CredentialView struct {
	ID             int       `json:"id"`
	ServiceID      string    `json:"service_id"`
	CredentialType string    `json:"credential_type"`
	Value          string    `json:"value"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ModelRouter is the slice of llm.Router the credential service needs.
type ModelRouter interface {
	Invalidate(teamID string)
}

// CredentialService stores tenant secrets encrypted at rest and serves
// decrypted values to the model router. It implements llm.CredentialSource.
type CredentialService struct {
	client *ent.Client
	vault  *vault.Vault
	router ModelRouter
}

// NewCredentialService creates a new CredentialService. router may be nil
// in tests.
func NewCredentialService(client *ent.Client, v *vault.Vault, router ModelRouter) *CredentialService {
	return &CredentialService{client: client, vault: v, router: router}
}

// SetRouter wires the model router after construction. The router consumes
// this service as its credential source, so one of the two is created first
// and linked back here.
func (s *CredentialService) SetRouter(r ModelRouter) {
	s.router = r
}

// Upsert stores or replaces the credential for (team, service), invalidating
// any cached model resolutions that may have used the old value.
func (s *CredentialService) Upsert(httpCtx context.Context, teamID, serviceID, credentialType, value string) (*CredentialView, error) {
	if serviceID == "" {
		return nil, NewValidationError("service_id", "required")
	}
	if value == "" {
		return nil, NewValidationError("value", "required")
	}
	if credentialType == "" {
		credentialType = "api_key"
	}

	encrypted, err := s.vault.Encrypt(value)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt credential: %w", err)
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	existing, err := s.client.Credential.Query().
		Where(credential.TeamID(teamID), credential.ServiceID(serviceID)).
		Only(ctx)
	var c *ent.Credential
	switch {
	case err == nil:
		c, err = s.client.Credential.UpdateOne(existing).
			SetCredentialType(credentialType).
			SetEncryptedValue(encrypted).
			Save(ctx)
	case ent.IsNotFound(err):
		c, err = s.client.Credential.Create().
			SetTeamID(teamID).
			SetServiceID(serviceID).
			SetCredentialType(credentialType).
			SetEncryptedValue(encrypted).
			Save(ctx)
	default:
		return nil, fmt.Errorf("failed to check credential: %w", err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to store credential: %w", err)
	}

	if s.router != nil {
		s.router.Invalidate(teamID)
	}
	return redact(c), nil
}

// List returns a team's credentials with values redacted.
func (s *CredentialService) List(httpCtx context.Context, teamID string) ([]*CredentialView, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	creds, err := s.client.Credential.Query().
		Where(credential.TeamID(teamID)).
		Order(ent.Asc(credential.FieldServiceID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list credentials: %w", err)
	}

	views := make([]*CredentialView, len(creds))
	for i, c := range creds {
		views[i] = redact(c)
	}
	return views, nil
}

// Delete removes the credential for (team, service) and invalidates cached
// resolutions.
func (s *CredentialService) Delete(httpCtx context.Context, teamID, serviceID string) error {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	n, err := s.client.Credential.Delete().
		Where(credential.TeamID(teamID), credential.ServiceID(serviceID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete credential: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	if s.router != nil {
		s.router.Invalidate(teamID)
	}
	return nil
}

// Get returns the decrypted credential value for the model router.
// Implements llm.CredentialSource.
func (s *CredentialService) Get(ctx context.Context, teamID, serviceID string) (string, error) {
	c, err := s.client.Credential.Query().
		Where(credential.TeamID(teamID), credential.ServiceID(serviceID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", llm.ErrCredentialNotFound
		}
		return "", fmt.Errorf("failed to get credential: %w", err)
	}
	value, err := s.vault.Decrypt(c.EncryptedValue)
	if err != nil {
		return "", fmt.Errorf("failed to decrypt credential: %w", err)
	}
	return value, nil
}

func redact(c *ent.Credential) *CredentialView {
	return &CredentialView{
		ID:             c.ID,
		ServiceID:      c.ServiceID,
		CredentialType: c.CredentialType,
		Value:          redactedValue,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}
