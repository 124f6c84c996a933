package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"jarScope/internal/model"
	"jarScope/internal/prices"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS pools (
	chain_id      BIGINT      NOT NULL,
	pool_address  TEXT        NOT NULL,
	name          TEXT        NOT NULL,
	token_a       TEXT        NOT NULL,
	token_b       TEXT        NOT NULL,
	decimals_a    SMALLINT    NOT NULL,
	decimals_b    SMALLINT    NOT NULL,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
	PRIMARY KEY (chain_id, pool_address)
);

CREATE TABLE IF NOT EXISTS token_prices (
	price_id    TEXT             PRIMARY KEY,
	price_usd   DOUBLE PRECISION NOT NULL CHECK (price_usd >= 0),
	updated_at  TIMESTAMPTZ      NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS pool_valuations (
	chain_id         BIGINT           NOT NULL,
	pool_address     TEXT             NOT NULL,
	block_number     BIGINT           NOT NULL,
	amount_a         NUMERIC          NOT NULL,
	amount_b         NUMERIC          NOT NULL,
	price_a          DOUBLE PRECISION NOT NULL,
	price_b          DOUBLE PRECISION NOT NULL,
	total_value      DOUBLE PRECISION NOT NULL,
	total_supply     NUMERIC          NOT NULL,
	price_per_share  DOUBLE PRECISION,
	degenerate       BOOLEAN          NOT NULL,
	observed_at      TIMESTAMPTZ      NOT NULL,
	created_at       TIMESTAMPTZ      NOT NULL DEFAULT now(),
	PRIMARY KEY (chain_id, pool_address, block_number)
);
`

// Store provides Postgres persistence for pools, prices and valuations.
type Store struct {
	pool *pgxpool.Pool
}

func NewStore(ctx context.Context, dsn string) (*Store, error) {
	if dsn == "" {
		return nil, fmt.Errorf("pg dsn is required")
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	return &Store{pool: pool}, nil
}

func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// EnsureSchema creates missing tables.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

// UpsertPools inserts or updates pool descriptors.
func (s *Store) UpsertPools(ctx context.Context, chainID uint64, pools []model.PoolDescriptor) error {
	if len(pools) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, pool := range pools {
		batch.Queue(`
			INSERT INTO pools (
				chain_id, pool_address, name, token_a, token_b, decimals_a, decimals_b, created_at, updated_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, now(), now())
			ON CONFLICT (chain_id, pool_address)
			DO UPDATE SET
				name = EXCLUDED.name,
				token_a = EXCLUDED.token_a,
				token_b = EXCLUDED.token_b,
				decimals_a = EXCLUDED.decimals_a,
				decimals_b = EXCLUDED.decimals_b,
				updated_at = now()
		`,
			int64(chainID),
			pool.Address.Hex(),
			pool.Name,
			pool.TokenA.Address.Hex(),
			pool.TokenB.Address.Hex(),
			int16(pool.TokenA.Decimals),
			int16(pool.TokenB.Decimals),
		)
	}

	br := s.pool.SendBatch(ctx, batch)
	defer br.Close()

	for range pools {
		if _, err := br.Exec(); err != nil {
			return err
		}
	}
	return nil
}

// PutValuations upserts valuation records keyed by pool and block.
func (s *Store) PutValuations(ctx context.Context, records []model.PoolValuationRecord) error {
	if len(records) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, r := range records {
		batch.Queue(`
			INSERT INTO pool_valuations (
				chain_id, pool_address, block_number, amount_a, amount_b, price_a, price_b,
				total_value, total_supply, price_per_share, degenerate, observed_at, created_at
			) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,now())
			ON CONFLICT (chain_id, pool_address, block_number)
			DO UPDATE SET
				amount_a = EXCLUDED.amount_a,
				amount_b = EXCLUDED.amount_b,
				price_a = EXCLUDED.price_a,
				price_b = EXCLUDED.price_b,
				total_value = EXCLUDED.total_value,
				total_supply = EXCLUDED.total_supply,
				price_per_share = EXCLUDED.price_per_share,
				degenerate = EXCLUDED.degenerate,
				observed_at = EXCLUDED.observed_at
		`,
			int64(r.ChainID),
			r.PoolAddress,
			int64(r.BlockNumber),
			r.AmountA,
			r.AmountB,
			r.PriceA,
			r.PriceB,
			r.TotalValue,
			r.TotalSupply,
			r.PricePerShare,
			r.Degenerate,
			r.ObservedAt,
		)
	}

	br := s.pool.SendBatch(ctx, batch)
	defer br.Close()

	for range records {
		if _, err := br.Exec(); err != nil {
			return err
		}
	}
	return nil
}

// LoadPrices returns every stored price.
func (s *Store) LoadPrices(ctx context.Context) (prices.Table, error) {
	rows, err := s.pool.Query(ctx, `SELECT price_id, price_usd FROM token_prices`)
	if err != nil {
		return nil, fmt.Errorf("query prices: %w", err)
	}
	defer rows.Close()

	table := make(prices.Table)
	for rows.Next() {
		var id string
		var price float64
		if err := rows.Scan(&id, &price); err != nil {
			return nil, fmt.Errorf("scan price: %w", err)
		}
		if err := prices.Set(table, id, price); err != nil {
			return nil, err
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read prices: %w", err)
	}
	return table, nil
}

// SavePrices upserts prices.
func (s *Store) SavePrices(ctx context.Context, table prices.Table) error {
	if len(table) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, id := range table.IDs() {
		batch.Queue(`
			INSERT INTO token_prices (price_id, price_usd, updated_at)
			VALUES ($1, $2, now())
			ON CONFLICT (price_id) DO UPDATE
			SET price_usd = EXCLUDED.price_usd, updated_at = now()
		`, string(id), table[id])
	}

	br := s.pool.SendBatch(ctx, batch)
	defer br.Close()

	for range table {
		if _, err := br.Exec(); err != nil {
			return err
		}
	}
	return nil
}
