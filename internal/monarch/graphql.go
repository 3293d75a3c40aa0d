package monarch

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/kazijehangir/monarch-bridge/models"
)

const accountsQuery = `query GetAccounts {
  accounts {
    id
    displayName
    currentBalance
    displayBalance
    isHidden
    isAsset
    includeInNetWorth
    type { name display }
    updatedAt
  }
}`

const transactionsQuery = `query GetTransactionsList($offset: Int, $limit: Int, $filters: TransactionFilterInput) {
  allTransactions(filters: $filters) {
    totalCount
    results(offset: $offset, limit: $limit) {
      id
      amount
      date
      pending
      notes
      needsReview
      plaidName
      merchant { id name }
      category { id name }
      account { id displayName }
      tags { id name }
    }
  }
}`

const updateTransactionMutation = `mutation Web_TransactionDrawerUpdateTransaction($input: UpdateTransactionMutationInput!) {
  updateTransaction(input: $input) {
    transaction {
      id
      amount
      date
      notes
      needsReview
      category { id name }
      merchant { id name }
    }
    errors {
      message
      fieldErrors { field messages }
    }
  }
}`

type gqlRequest struct {
	OperationName string         `json:"operationName"`
	Query         string         `json:"query"`
	Variables     map[string]any `json:"variables,omitempty"`
}

type gqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []gqlError      `json:"errors"`
}

type gqlError struct {
	Message string `json:"message"`
}

// graphql posts one GraphQL operation and returns the raw data document.
// Provider payloads are passed through to callers without reinterpretation.
func (c *httpClient) graphql(ctx context.Context, operation, query string, variables map[string]any) (json.RawMessage, error) {
	resp, err := c.authedRequest(ctx).
		SetBody(gqlRequest{OperationName: operation, Query: query, Variables: variables}).
		Post("/graphql")
	if err != nil {
		return nil, fmt.Errorf("%s request: %w", operation, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, fmt.Errorf("%s: %w", operation, err)
	}

	var body gqlResponse
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return nil, fmt.Errorf("decode %s response: %w", operation, err)
	}
	if len(body.Errors) > 0 {
		return nil, fmt.Errorf("%s: %s", operation, body.Errors[0].Message)
	}

	return body.Data, nil
}

func (c *httpClient) GetAccounts(ctx context.Context) (json.RawMessage, error) {
	return c.graphql(ctx, "GetAccounts", accountsQuery, nil)
}

func (c *httpClient) GetTransactions(ctx context.Context, filters models.TransactionFilters) (json.RawMessage, error) {
	variables := map[string]any{
		"offset": 0,
		"limit":  filters.Limit,
		"filters": map[string]any{
			"search":     "",
			"categories": []string{},
			"accounts":   []string{},
			"tags":       []string{},
			"startDate":  filters.StartDate,
			"endDate":    filters.EndDate,
		},
	}

	return c.graphql(ctx, "GetTransactionsList", transactionsQuery, variables)
}

// updateFieldNames maps the REST field names accepted by the bridge to the
// provider's GraphQL input field names.
var updateFieldNames = map[string]string{
	"notes":         "notes",
	"category_id":   "categoryId",
	"needs_review":  "needsReview",
	"merchant_name": "merchantName",
	"amount":        "amount",
	"date":          "date",
}

func (c *httpClient) UpdateTransaction(ctx context.Context, transactionID string, fields map[string]any) error {
	input := map[string]any{"id": transactionID}
	for name, value := range fields {
		gqlName, ok := updateFieldNames[name]
		if !ok {
			return fmt.Errorf("unsupported transaction field %q", name)
		}
		input[gqlName] = value
	}

	data, err := c.graphql(ctx, "Web_TransactionDrawerUpdateTransaction", updateTransactionMutation, map[string]any{"input": input})
	if err != nil {
		return err
	}

	// The mutation reports validation problems inside the payload rather
	// than through the GraphQL errors array.
	var result struct {
		UpdateTransaction struct {
			Errors []struct {
				Message string `json:"message"`
			} `json:"errors"`
		} `json:"updateTransaction"`
	}
	if err = json.Unmarshal(data, &result); err != nil {
		return fmt.Errorf("decode update response: %w", err)
	}
	if errs := result.UpdateTransaction.Errors; len(errs) > 0 && errs[0].Message != "" {
		return fmt.Errorf("update transaction %s: %s", transactionID, errs[0].Message)
	}

	return nil
}
