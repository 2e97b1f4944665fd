package events

// Void is the result type of requests that only signal completion.
type Void = struct{}

// ChangeRecord describes an entity after a data-store mutation.
type ChangeRecord[T any] struct {
	// ID is the entity's data-store key.
	ID string `json:"id"`
	// Rev is the revision created by the mutation.
	Rev string `json:"rev"`
	// OldRev is the revision that was replaced. Empty for inserts.
	OldRev string `json:"oldRev,omitempty"`
	// Item is the entity as stored.
	Item *T `json:"item"`
}

// DeletedRecord identifies a removed entity.
type DeletedRecord struct {
	ID  string `json:"id"`
	Rev string `json:"rev,omitempty"`
}

// ListOptions pages through a list request.
type ListOptions struct {
	Limit         int    `json:"limit,omitempty"`
	NextPageToken string `json:"nextPageToken,omitempty"`
}

// ListResult is one page of a list request.
type ListResult[T any] struct {
	Items         []*T   `json:"items"`
	NextPageToken string `json:"nextPageToken,omitempty"`
}
