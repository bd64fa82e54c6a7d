package repository

import "testing"

func TestLikeOperatorByDialect(t *testing.T) {
	cases := []struct {
		dialect string
		want    string
	}{
		{dialect: "sqlite", want: "LIKE"},
		{dialect: "postgres", want: "ILIKE"},
		{dialect: "postgresql", want: "ILIKE"},
		{dialect: " Postgres ", want: "ILIKE"},
		{dialect: "", want: "LIKE"},
		{dialect: "mysql", want: "LIKE"},
	}
	for _, tc := range cases {
		if got := likeOperatorByDialect(tc.dialect); got != tc.want {
			t.Fatalf("dialect %q want %s got %s", tc.dialect, tc.want, got)
		}
	}
}

func TestDBDialectNameNilDefaultsToSQLite(t *testing.T) {
	if got := dbDialectName(nil); got != "sqlite" {
		t.Fatalf("nil db dialect want sqlite got %s", got)
	}
}
