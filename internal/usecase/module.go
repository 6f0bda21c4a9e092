package usecase

import "go.uber.org/fx"

// Module provides core checkout use cases to the fx container.
var Module = fx.Provide(
	NewSubmissionUseCase,
	NewVerificationUseCase,
)
