// Package graph pkg/graph/graph.go wraps the Neo4j driver behind the
// Service interface. Every operation is timed and forwarded to the
// benchmark tracker under the "graph" subsystem.
package graph

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/mfreeman451/dbplayground/pkg/bench"
)

const subsystem = "graph"

// Cypher statements for the social graph.
const (
	createUserCypher = `
	MERGE (u:User {name: $name})
	SET u.age = $age`

	createFriendshipCypher = `
	MATCH (a:User {name: $user})
	MATCH (b:User {name: $friend})
	MERGE (a)-[:FRIENDS_WITH]->(b)`

	findFriendsCypher = `
	MATCH (u:User {name: $name})-[:FRIENDS_WITH]-(f:User)
	RETURN DISTINCT f.name AS name
	ORDER BY name`

	findFriendsOfFriendsCypher = `
	MATCH (u:User {name: $name})-[:FRIENDS_WITH]-()-[:FRIENDS_WITH]-(fof:User)
	WHERE fof.name <> $name AND NOT (u)-[:FRIENDS_WITH]-(fof)
	RETURN DISTINCT fof.name AS name
	ORDER BY name`

	shortestPathCypher = `
	MATCH p = shortestPath((a:User {name: $from})-[:FRIENDS_WITH*]-(b:User {name: $to}))
	RETURN [n IN nodes(p) | n.name] AS path`

	clearCypher = `
	MATCH (n:User)
	DETACH DELETE n`
)

// Config holds the Neo4j connection settings.
type Config struct {
	URI      string `json:"uri"` // e.g., bolt://localhost:7687
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate implements config.Validator.
func (c *Config) Validate() error {
	if c.URI == "" {
		return errMissingURI
	}

	return nil
}

// Client implements Service over a Neo4j driver.
type Client struct {
	driver neo4j.DriverWithContext
	inst   *bench.Instrumenter
}

// New connects to Neo4j and verifies connectivity.
func New(ctx context.Context, cfg *Config, rec bench.Recorder) (*Client, error) {
	driver, err := neo4j.NewDriverWithContext(cfg.URI, neo4j.BasicAuth(cfg.Username, cfg.Password, ""))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errFailedToConnect, err)
	}

	if err := driver.VerifyConnectivity(ctx); err != nil {
		return nil, fmt.Errorf("%w: %w", errFailedToConnect, err)
	}

	return &Client{
		driver: driver,
		inst:   bench.NewInstrumenter(rec, subsystem),
	}, nil
}

// CreateUser upserts a user node.
func (c *Client) CreateUser(ctx context.Context, name string, age int) error {
	if name == "" {
		return errEmptyName
	}

	return c.inst.Do("create_user", func() error {
		return c.write(ctx, createUserCypher, map[string]any{
			"name": name,
			"age":  age,
		})
	})
}

// CreateFriendship links two existing users.
func (c *Client) CreateFriendship(ctx context.Context, user, friend string) error {
	if user == "" || friend == "" {
		return errEmptyName
	}

	return c.inst.Do("create_friendship", func() error {
		return c.write(ctx, createFriendshipCypher, map[string]any{
			"user":   user,
			"friend": friend,
		})
	})
}

// FindFriends returns the user's direct friends, sorted by name.
func (c *Client) FindFriends(ctx context.Context, name string) ([]string, error) {
	return bench.Call(c.inst, "find_friends", func() ([]string, error) {
		return c.readNames(ctx, findFriendsCypher, map[string]any{"name": name})
	})
}

// FindFriendsOfFriends returns second-degree connections, excluding the
// user and their direct friends.
func (c *Client) FindFriendsOfFriends(ctx context.Context, name string) ([]string, error) {
	return bench.Call(c.inst, "find_friends_of_friends", func() ([]string, error) {
		return c.readNames(ctx, findFriendsOfFriendsCypher, map[string]any{"name": name})
	})
}

// ShortestPath returns the user names along the shortest friendship path.
// Returns ErrNoPath when the two users are not connected.
func (c *Client) ShortestPath(ctx context.Context, from, to string) ([]string, error) {
	return bench.Call(c.inst, "shortest_path", func() ([]string, error) {
		session := c.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
		defer session.Close(ctx)

		result, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
			res, err := tx.Run(ctx, shortestPathCypher, map[string]any{
				"from": from,
				"to":   to,
			})
			if err != nil {
				return nil, err
			}

			if !res.Next(ctx) {
				if err := res.Err(); err != nil {
					return nil, err
				}

				return nil, fmt.Errorf("%w: %s -> %s", ErrNoPath, from, to)
			}

			raw, ok := res.Record().Get("path")
			if !ok {
				return nil, errUnexpectedType
			}

			items, ok := raw.([]any)
			if !ok {
				return nil, errUnexpectedType
			}

			path := make([]string, 0, len(items))

			for _, item := range items {
				s, ok := item.(string)
				if !ok {
					return nil, errUnexpectedType
				}

				path = append(path, s)
			}

			return path, nil
		})
		if err != nil {
			return nil, err
		}

		path, ok := result.([]string)
		if !ok {
			return nil, errUnexpectedType
		}

		return path, nil
	})
}

// Clear removes every user node and its relationships.
func (c *Client) Clear(ctx context.Context) error {
	return c.inst.Do("clear_database", func() error {
		return c.write(ctx, clearCypher, nil)
	})
}

// Close releases the underlying driver.
func (c *Client) Close(ctx context.Context) error {
	return c.driver.Close(ctx)
}

func (c *Client) write(ctx context.Context, cypher string, params map[string]any) error {
	session := c.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, cypher, params)
		if err != nil {
			return nil, err
		}

		return res.Consume(ctx)
	})
	if err != nil {
		return fmt.Errorf("graph write: %w", err)
	}

	return nil
}

func (c *Client) readNames(ctx context.Context, cypher string, params map[string]any) ([]string, error) {
	session := c.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close(ctx)

	result, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, cypher, params)
		if err != nil {
			return nil, err
		}

		names := make([]string, 0)

		for res.Next(ctx) {
			if v, ok := res.Record().Get("name"); ok {
				if s, ok := v.(string); ok {
					names = append(names, s)
				}
			}
		}

		if err := res.Err(); err != nil {
			return nil, err
		}

		return names, nil
	})
	if err != nil {
		return nil, fmt.Errorf("graph read: %w", err)
	}

	names, ok := result.([]string)
	if !ok {
		return nil, errUnexpectedType
	}

	return names, nil
}
