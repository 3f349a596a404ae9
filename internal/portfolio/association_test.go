package portfolio

import (
	"testing"

	"pfa/internal/models"
)

func linked(ticker, accountID string) models.Asset {
	a := models.Asset{Ticker: ticker, AssetType: models.AssetTypeStock}
	if accountID != "" {
		a.RetirementAccountID = &accountID
	}
	return a
}

func TestAssetsForAccount(t *testing.T) {
	assets := []models.Asset{
		linked("VTI", "acct-1"),
		linked("AAPL", ""),
		linked("BND", "acct-2"),
		linked("VXUS", "acct-1"),
	}

	t.Run("preserves_order_and_positions", func(t *testing.T) {
		got := AssetsForAccount(assets, "acct-1")
		if len(got) != 2 {
			t.Fatalf("expected 2 assets, got %d", len(got))
		}
		if got[0].Index != 0 || got[0].Record.Ticker != "VTI" {
			t.Errorf("expected VTI at 0, got %s at %d", got[0].Record.Ticker, got[0].Index)
		}
		if got[1].Index != 3 || got[1].Record.Ticker != "VXUS" {
			t.Errorf("expected VXUS at 3, got %s at %d", got[1].Record.Ticker, got[1].Index)
		}
	})

	t.Run("taxable_assets", func(t *testing.T) {
		got := TaxableAssets(assets)
		if len(got) != 1 || got[0].Index != 1 {
			t.Fatalf("expected AAPL at 1, got %+v", got)
		}
	})

	t.Run("unknown_account", func(t *testing.T) {
		if got := AssetsForAccount(assets, "missing"); len(got) != 0 {
			t.Errorf("expected no assets, got %d", len(got))
		}
	})

	t.Run("empty_id_matches_nothing", func(t *testing.T) {
		if got := AssetsForAccount(assets, ""); len(got) != 0 {
			t.Errorf("expected no assets, got %d", len(got))
		}
	})
}

func TestRemoveAccount(t *testing.T) {
	accounts := []models.RetirementAccount{
		{ID: "acct-1", AccountType: models.RetirementAccountK401},
		{ID: "acct-2", AccountType: models.RetirementAccountRothIRA},
	}

	t.Run("cascades_to_linked_assets", func(t *testing.T) {
		assets := []models.Asset{linked("VTI", "acct-1"), linked("AAPL", ""), linked("BND", "acct-2"), linked("VXUS", "acct-1")}

		gotAssets, gotAccounts := RemoveAccount(assets, accounts, "acct-1")

		if n := len(AssetsForAccount(gotAssets, "acct-1")); n != 0 {
			t.Errorf("expected no assets for removed account, got %d", n)
		}
		if len(gotAssets) != 2 || gotAssets[0].Ticker != "AAPL" || gotAssets[1].Ticker != "BND" {
			t.Errorf("unexpected remaining assets: %+v", gotAssets)
		}
		if len(gotAccounts) != 1 || gotAccounts[0].ID != "acct-2" {
			t.Errorf("unexpected remaining accounts: %+v", gotAccounts)
		}
		if len(Orphans(gotAssets, gotAccounts)) != 0 {
			t.Error("expected no orphans after cascade")
		}
	})

	t.Run("inputs_untouched", func(t *testing.T) {
		assets := []models.Asset{linked("VTI", "acct-1")}
		RemoveAccount(assets, accounts, "acct-1")
		if len(assets) != 1 || len(accounts) != 2 {
			t.Error("expected inputs to be unchanged")
		}
	})

	t.Run("removing_only_linked_asset_keeps_account", func(t *testing.T) {
		assets := []models.Asset{linked("VTI", "acct-1"), linked("AAPL", "")}
		assets = append(assets[:0:0], assets[1:]...)

		if got := AssetsForAccount(assets, "acct-1"); len(got) != 0 {
			t.Errorf("expected no linked assets, got %d", len(got))
		}
		if len(Orphans(assets, accounts)) != 0 {
			t.Error("expected no orphans")
		}
	})
}

func TestOrphans(t *testing.T) {
	assets := []models.Asset{linked("VTI", "gone"), linked("AAPL", ""), linked("BND", "acct-1")}
	accounts := []models.RetirementAccount{{ID: "acct-1"}}

	got := Orphans(assets, accounts)
	if len(got) != 1 || got[0] != 0 {
		t.Errorf("expected orphan at 0, got %v", got)
	}
}
