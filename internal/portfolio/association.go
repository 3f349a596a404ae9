package portfolio

// Linked is implemented by records that may belong to a retirement account.
// An empty LinkedAccountID means the record is taxable.
type Linked interface {
	LinkedAccountID() string
}

// Account is implemented by retirement account records.
type Account interface {
	AccountID() string
}

// Indexed pairs a record with its position in the full collection, so edits
// made through a filtered view can be written back to the right slot.
type Indexed[T any] struct {
	Index  int
	Record T
}

// Index maps retirement account IDs to asset positions in a flat collection.
// It is derived from the collection and must be rebuilt after any mutation;
// the flat collection stays the single source of truth.
type Index struct {
	byAccount map[string][]int
	taxable   []int
}

// NewIndex builds the account → positions table for assets.
func NewIndex[T Linked](assets []T) Index {
	idx := Index{byAccount: make(map[string][]int)}
	for i, a := range assets {
		id := a.LinkedAccountID()
		if id == "" {
			idx.taxable = append(idx.taxable, i)
			continue
		}
		idx.byAccount[id] = append(idx.byAccount[id], i)
	}
	return idx
}

// Positions returns the insertion-ordered positions of assets linked to accountID.
func (x Index) Positions(accountID string) []int {
	if accountID == "" {
		return nil
	}
	return x.byAccount[accountID]
}

// TaxablePositions returns the positions of assets with no account link.
func (x Index) TaxablePositions() []int {
	return x.taxable
}

func pick[T any](assets []T, positions []int) []Indexed[T] {
	out := make([]Indexed[T], 0, len(positions))
	for _, p := range positions {
		out = append(out, Indexed[T]{Index: p, Record: assets[p]})
	}
	return out
}

// AssetsForAccount returns the assets whose account link equals accountID, in
// insertion order, each with its original position.
func AssetsForAccount[T Linked](assets []T, accountID string) []Indexed[T] {
	return pick(assets, NewIndex(assets).Positions(accountID))
}

// TaxableAssets returns the assets with no account link, in insertion order.
func TaxableAssets[T Linked](assets []T) []Indexed[T] {
	return pick(assets, NewIndex(assets).TaxablePositions())
}

// RemoveAccount deletes the account with accountID and every asset linked to
// it. Both collections are returned together as fresh slices; the inputs are
// not modified, so callers publish the pair in a single assignment and no
// observer can see the account gone with its assets still present.
func RemoveAccount[T Linked, A Account](assets []T, accounts []A, accountID string) ([]T, []A) {
	keptAssets := make([]T, 0, len(assets))
	for _, a := range assets {
		if accountID != "" && a.LinkedAccountID() == accountID {
			continue
		}
		keptAssets = append(keptAssets, a)
	}
	keptAccounts := make([]A, 0, len(accounts))
	for _, acct := range accounts {
		if acct.AccountID() == accountID {
			continue
		}
		keptAccounts = append(keptAccounts, acct)
	}
	return keptAssets, keptAccounts
}

// Orphans returns the positions of assets that reference an account absent
// from accounts.
func Orphans[T Linked, A Account](assets []T, accounts []A) []int {
	known := make(map[string]bool, len(accounts))
	for _, acct := range accounts {
		known[acct.AccountID()] = true
	}
	var out []int
	for i, a := range assets {
		if id := a.LinkedAccountID(); id != "" && !known[id] {
			out = append(out, i)
		}
	}
	return out
}
