package service

import (
	"context"

	"comanda/internal/model"
	"comanda/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// resolveActor turns the subject id from a validated token into an employee
// record. A malformed or unknown id yields (nil, nil) and the policy treats
// the nil actor like any wrong-role actor; a failed lookup propagates so the
// caller reports a storage fault, not a denial.
func resolveActor(ctx context.Context, repo repository.EmployeeRepository, actorID string) (*model.Employee, error) {
	oid, err := primitive.ObjectIDFromHex(actorID)
	if err != nil {
		return nil, nil
	}
	return repo.FindByID(ctx, oid)
}
