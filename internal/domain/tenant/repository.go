package tenant

import "context"

// TenantRepository exposes the tenant-settings lookup the engine depends on.
type TenantRepository interface {
	GetSettings(ctx context.Context, tenantID string) (Settings, error)
}
