package graph

import graphql "github.com/graph-gophers/graphql-go"

// Schema is the closed contract of the API: two entity types, two input
// types, one query and two mutations. Anything else is rejected by the
// executor before it reaches a resolver.
const Schema = `
	schema {
		query: RootQuery
		mutation: RootMutation
	}

	"RFC 3339 timestamp or bare date (2006-01-02) on input."
	scalar DateTime

	"Non-negative amount; accepts a number or a numeric string on input."
	scalar Price

	type Event {
		id: ID!
		title: String!
		description: String!
		price: Price!
		date: DateTime!
		creator: User!
	}

	type User {
		id: ID!
		email: String!
		password: String
		createdEvents: [Event!]
	}

	input EventInput {
		title: String!
		description: String!
		price: Price!
		date: DateTime!
	}

	input UserInput {
		email: String!
		password: String!
	}

	type RootQuery {
		events: [Event!]!
	}

	type RootMutation {
		createEvent(eventInput: EventInput!): Event!
		createUser(userInput: UserInput!): User!
	}
`

// MustParseSchema binds the SDL to a root resolver.
func MustParseSchema(r *Resolver) *graphql.Schema {
	return graphql.MustParseSchema(Schema, r, graphql.UseStringDescriptions())
}
