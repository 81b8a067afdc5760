package firestore

import (
	"context"

	"wellness/internal/domain/entity"
	"wellness/internal/domain/repository"
	"wellness/internal/errors"
	"wellness/internal/util"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

type userRepository struct {
	client *firestore.Client
}

// NewUserRepository returns a repository.UserRepository backed by the users collection.
func NewUserRepository(client *firestore.Client) repository.UserRepository {
	return &userRepository{client: client}
}

func (repo *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	if id == "" {
		return nil, repository.ErrUserNotFound
	}

	snap, err := repo.client.Collection(usersCollection).Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrUserNotFound
		}

		return nil, storageError(err, "failed to find user by id")
	}

	return decodeUser(snap)
}

func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	iter := repo.client.Collection(usersCollection).
		Where("email", "==", entity.NormalizeEmail(email)).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	snap, err := iter.Next()
	if errors.Is(err, iterator.Done) {
		return nil, repository.ErrUserNotFound
	}
	if err != nil {
		return nil, storageError(err, "failed to find user by email")
	}

	return decodeUser(snap)
}

// Create writes the user together with a user_emails sentinel in one transaction.
// The sentinel's document ID is derived from the email, so a concurrent registration
// of the same address fails with AlreadyExists.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	doc := fromUser(user)
	userRef := repo.client.Collection(usersCollection).NewDoc()
	emailRef := repo.client.Collection(userEmailsCollection).Doc(util.HashKey(doc.Email))

	err := repo.client.RunTransaction(ctx, func(_ context.Context, tx *firestore.Transaction) error {
		if err := tx.Create(emailRef, &emailDocument{UserID: userRef.ID}); err != nil {
			return err
		}

		return tx.Create(userRef, doc)
	})
	if err != nil {
		if isAlreadyExists(err) {
			return errors.WithStack(repository.ErrEmailTaken)
		}

		return storageError(err, "failed to create user")
	}

	user.ID = userRef.ID
	user.Email = doc.Email

	return nil
}

func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	doc := fromUser(user)

	_, err := repo.client.Collection(usersCollection).Doc(user.ID).Update(ctx, []firestore.Update{
		{Path: "name", Value: doc.Name},
		{Path: "password", Value: optionalField(doc.PasswordHash)},
		{Path: "loginProvider", Value: doc.LoginProvider},
		{Path: "googleId", Value: optionalField(doc.GoogleID)},
		{Path: "updatedAt", Value: doc.UpdatedAt},
	})
	if err != nil {
		if isNotFound(err) {
			return repository.ErrUserNotFound
		}

		return storageError(err, "failed to update user")
	}

	return nil
}

// DeleteAll empties users and the email reservations that guard them.
func (repo *userRepository) DeleteAll(ctx context.Context) (int, error) {
	deleted, err := deleteCollection(ctx, repo.client, usersCollection)
	if err != nil {
		return deleted, storageError(err, "failed to delete users")
	}

	if _, err := deleteCollection(ctx, repo.client, userEmailsCollection); err != nil {
		return deleted, storageError(err, "failed to delete email reservations")
	}

	return deleted, nil
}

func decodeUser(snap *firestore.DocumentSnapshot) (*entity.User, error) {
	var doc userDocument
	if err := snap.DataTo(&doc); err != nil {
		return nil, storageError(err, "failed to decode user document")
	}

	return doc.toEntity(snap.Ref.ID), nil
}

// optionalField removes the field when the value is empty.
func optionalField(v string) any {
	if v == "" {
		return firestore.Delete
	}

	return v
}
