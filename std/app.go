/*
Package std wires together the standard set of extensions into a
single application stack.

It is a good place to get started building your first app, and to
see how the extensions depend on each other. You can replace parts
with custom implementations as your project grows.
*/
package std

import (
	"github.com/cascade-one/cascade"
	"github.com/cascade-one/cascade/app"
	"github.com/cascade-one/cascade/x"
	"github.com/cascade-one/cascade/x/funds"
	"github.com/cascade-one/cascade/x/pending"
	"github.com/cascade-one/cascade/x/position"
	"github.com/cascade-one/cascade/x/referral"
	"github.com/cascade-one/cascade/x/revenuepool"
	"github.com/cascade-one/cascade/x/utils"
)

// Chain returns a chain of decorators, to handle logging, recovery
// and state isolation.
func Chain() app.Decorators {
	return app.ChainDecorators(
		utils.NewLogging(),
		utils.NewRecovery(),
		// on CheckTx, bad tx don't affect state
		utils.NewSavepoint().OnCheck(),
		utils.NewActionTagger(),
		// on DeliverTx, a failed message rolls back all writes
		utils.NewSavepoint().OnDeliver(),
	)
}

// Router returns the message router, dispatching to all extensions.
// The controllers are shared, so that for example an issued position
// is immediately visible to the referral extension.
func Router(auth x.Authenticator) *app.Router {
	fundsCtrl := funds.NewController(funds.NewWalletBucket())
	pendingCtrl := pending.NewController(pending.NewPendingBucket(), fundsCtrl)
	poolCtrl := revenuepool.NewController(revenuepool.NewPoolBucket(), revenuepool.NewMemberBucket(), pendingCtrl)
	positionCtrl := position.NewController(position.NewPositionBucket())
	referralCtrl := referral.NewController(positionCtrl, pendingCtrl, poolCtrl, fundsCtrl)

	r := app.NewRouter()
	funds.RegisterRoutes(r, auth, fundsCtrl)
	pending.RegisterRoutes(r, auth, pendingCtrl)
	revenuepool.RegisterRoutes(r, auth, poolCtrl, fundsCtrl)
	position.RegisterRoutes(r, auth, positionCtrl, referralCtrl, referralCtrl, poolCtrl)
	referral.RegisterRoutes(r, auth, referralCtrl)
	return r
}

// Stack wires up the standard router with the standard decorator
// chain into a single handler.
func Stack(auth x.Authenticator) cascade.Handler {
	return Chain().WithHandler(Router(auth))
}

// Initializers returns the genesis initializers of all extensions
// that read genesis state.
func Initializers() []cascade.Initializer {
	return []cascade.Initializer{
		funds.Initializer{},
		revenuepool.Initializer{},
		referral.Initializer{},
	}
}
