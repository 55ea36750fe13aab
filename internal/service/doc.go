// Package service implements the business logic layer for the Activities API.
//
// The service package owns the signup rules: an activity must exist, a
// student may not sign up twice for the same activity, and only registered
// students can unregister. Capacity (max_participants) is descriptive and is
// deliberately never enforced here.
//
// # Service Pattern
//
//   - Constructor function (NewActivityService) accepts a config struct with
//     the repository dependency
//   - The service defines the repository interface it consumes, so the store
//     can be swapped or faked in tests
//   - Errors are returned as sentinel errors defined in errors.go
//   - Context is passed through on every operation
//
// # Example Usage
//
//	svc := service.NewActivityService(service.ActivityServiceConfig{
//	    ActivityRepo: repository.NewActivityDirectory(model.SeedActivities()),
//	})
//	msg, err := svc.Signup(ctx, "Basketball", "amy@mergington.edu")
package service
