package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-property-dex/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/service_mock.go -package=mock

// WalletService owns the wallet session. All mutations are serialised by a
// single control loop started with Run; the other methods send commands to
// that loop and wait for its answer.
type WalletService interface {
	// Run starts the control loop and blocks until ctx is done. It subscribes
	// to provider notifications and performs the startup auto-connect: if the
	// wallet already exposes an account the session connects without a
	// prompt. Run may be called once.
	Run(ctx context.Context) error

	// Connect authorizes an account, moves the wallet to the required
	// network and reads the three balances. The session is committed only
	// when every step succeeded. Concurrent calls share one attempt and
	// receive the same result.
	//
	// Errors: ErrProviderUnavailable, ErrUserRejected, ErrWrongNetwork,
	// ErrBalanceRead.
	Connect(ctx context.Context) (models.Session, error)

	// Disconnect resets the session to its defaults and cancels any
	// in-flight connect or refresh. It has no wallet side effects.
	Disconnect(ctx context.Context) error

	// RefreshBalances re-reads the balances of the connected account and
	// overwrites only the balances. It is a no-op while disconnected. On
	// failure the last known balances are kept and ErrBalanceRead is
	// returned.
	RefreshBalances(ctx context.Context) error

	// Session returns the last committed session.
	Session() models.Session

	// Updates delivers a snapshot after every session change and every
	// failed connect or refresh. When the consumer falls behind the oldest
	// pending update is dropped.
	Updates() <-chan models.SessionUpdate
}

// TokenService creates property tokens through the token creator contract.
type TokenService interface {
	// CreateToken validates data, encodes the createToken call, simulates its
	// confirmation and records the resulting token. Requires a connected
	// wallet.
	CreateToken(ctx context.Context, data models.TokenData) (models.CreatedToken, error)

	// ListCreated returns the tokens created by the connected account.
	ListCreated(ctx context.Context) ([]models.CreatedToken, error)
}

// ListingService manages marketplace listings.
type ListingService interface {
	// Create validates draft, simulates the marketplace call and stores the
	// listing. Requires a connected wallet.
	Create(ctx context.Context, draft models.ListingDraft) (models.TokenListing, error)

	// Browse returns active, unexpired listings matching filter.
	Browse(ctx context.Context, filter models.ListingFilter) ([]models.TokenListing, error)

	// SeedDemoListings installs the demo listings, renewing the ones that
	// have expired. Live demo listings are left unchanged.
	SeedDemoListings(ctx context.Context) error
}

// BalanceRefreshJob periodically refreshes the wallet balances in the
// background.
type BalanceRefreshJob interface {
	// Start launches the background goroutine. Any previously running job is
	// stopped first. A zero or negative interval disables the job.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// terminated.
	Stop()
}
