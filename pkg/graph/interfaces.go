package graph

import "context"

//go:generate mockgen -destination=mock_graph.go -package=graph github.com/mfreeman451/dbplayground/pkg/graph Service

// Service is the social graph surface the API and the e-commerce scenario
// consume.
type Service interface {
	CreateUser(ctx context.Context, name string, age int) error
	CreateFriendship(ctx context.Context, user, friend string) error
	FindFriends(ctx context.Context, name string) ([]string, error)
	FindFriendsOfFriends(ctx context.Context, name string) ([]string, error)
	ShortestPath(ctx context.Context, from, to string) ([]string, error)
	Clear(ctx context.Context) error
	Close(ctx context.Context) error
}
