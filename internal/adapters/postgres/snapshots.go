package postgres

import (
    "context"
    "fmt"
    "time"

    sq "github.com/Masterminds/squirrel"
    "github.com/georgysavva/scany/v2/pgxscan"
    "github.com/shopspring/decimal"

    "chaincarbon/internal/domain"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var snapshotColumns = []string{
    "certificate_id", "status", "amount::text AS amount", "owner_company_id", "project_id", "project_name",
    "issued_at", "expires_at", "chain_hash", "chain_revision", "chain_version", "fetched_at",
}

const maxSnapshotPage = 500

// UpsertSnapshot stores the latest observed state. A retired snapshot is
// never overwritten by a non-retired one.
func (db *DB) UpsertSnapshot(ctx context.Context, c domain.Certificate) error {
    var issuedAt *time.Time
    if !c.IssuedAt.IsZero() {
        issuedAt = &c.IssuedAt
    }
    _, err := db.q.Exec(ctx, `
        INSERT INTO certificate_snapshots
            (certificate_id, status, amount, owner_company_id, project_id, project_name,
             issued_at, expires_at, chain_hash, chain_revision, chain_version, fetched_at)
        VALUES ($1, $2, $3::numeric, $4, $5, $6, $7, $8, $9, $10, $11, now())
        ON CONFLICT (certificate_id) DO UPDATE SET
            status           = EXCLUDED.status,
            amount           = EXCLUDED.amount,
            owner_company_id = EXCLUDED.owner_company_id,
            project_id       = EXCLUDED.project_id,
            project_name     = EXCLUDED.project_name,
            issued_at        = EXCLUDED.issued_at,
            expires_at       = EXCLUDED.expires_at,
            chain_hash       = EXCLUDED.chain_hash,
            chain_revision   = EXCLUDED.chain_revision,
            chain_version    = EXCLUDED.chain_version,
            fetched_at       = now()
        WHERE certificate_snapshots.status <> 'RETIRED' OR EXCLUDED.status = 'RETIRED'
    `, c.ID, string(c.Status), c.Amount.String(), c.OwnerCompanyID, c.ProjectID, c.ProjectName,
        issuedAt, c.ExpiresAt, c.Blockchain.Hash, c.Blockchain.Revision, c.Blockchain.Version)
    return mapError(err, "certificate snapshot", c.ID)
}

func (db *DB) GetSnapshot(ctx context.Context, certID string) (domain.CertificateSnapshot, error) {
    query, args, err := psql.Select(snapshotColumns...).
        From("certificate_snapshots").
        Where(sq.Eq{"certificate_id": certID}).
        ToSql()
    if err != nil {
        return domain.CertificateSnapshot{}, err
    }
    var row snapshotRow
    if err := pgxscan.Get(ctx, db.q, &row, query, args...); err != nil {
        return domain.CertificateSnapshot{}, mapError(err, "certificate snapshot", certID)
    }
    return row.toDomain()
}

func (db *DB) ListSnapshots(ctx context.Context, f domain.SnapshotFilter) ([]domain.CertificateSnapshot, error) {
    q := psql.Select(snapshotColumns...).From("certificate_snapshots")
    if f.Status != nil {
        q = q.Where(sq.Eq{"status": string(*f.Status)})
    }
    if f.OwnerCompanyID != nil {
        q = q.Where(sq.Eq{"owner_company_id": *f.OwnerCompanyID})
    }
    limit := f.Limit
    if limit <= 0 || limit > maxSnapshotPage {
        limit = 100
    }
    query, args, err := q.OrderBy("fetched_at DESC", "certificate_id").Limit(uint64(limit)).ToSql()
    if err != nil {
        return nil, err
    }

    var rows []snapshotRow
    if err := pgxscan.Select(ctx, db.q, &rows, query, args...); err != nil {
        return nil, err
    }
    out := make([]domain.CertificateSnapshot, 0, len(rows))
    for _, r := range rows {
        snap, err := r.toDomain()
        if err != nil {
            return nil, err
        }
        out = append(out, snap)
    }
    return out, nil
}

type snapshotRow struct {
    CertificateID  string     `db:"certificate_id"`
    Status         string     `db:"status"`
    Amount         string     `db:"amount"`
    OwnerCompanyID string     `db:"owner_company_id"`
    ProjectID      string     `db:"project_id"`
    ProjectName    string     `db:"project_name"`
    IssuedAt       *time.Time `db:"issued_at"`
    ExpiresAt      *time.Time `db:"expires_at"`
    ChainHash      string     `db:"chain_hash"`
    ChainRevision  string     `db:"chain_revision"`
    ChainVersion   string     `db:"chain_version"`
    FetchedAt      time.Time  `db:"fetched_at"`
}

func (r snapshotRow) toDomain() (domain.CertificateSnapshot, error) {
    amount, err := decimal.NewFromString(r.Amount)
    if err != nil {
        return domain.CertificateSnapshot{}, fmt.Errorf("certificate snapshot %s amount: %w", r.CertificateID, err)
    }
    c := domain.Certificate{
        ID:             r.CertificateID,
        Amount:         amount,
        Status:         domain.CertificateStatus(r.Status),
        OwnerCompanyID: r.OwnerCompanyID,
        ProjectID:      r.ProjectID,
        ProjectName:    r.ProjectName,
        ExpiresAt:      r.ExpiresAt,
        Blockchain:     domain.BlockchainLink{Hash: r.ChainHash, Revision: r.ChainRevision, Version: r.ChainVersion},
    }
    if r.IssuedAt != nil {
        c.IssuedAt = *r.IssuedAt
    }
    return domain.CertificateSnapshot{Certificate: c, FetchedAt: r.FetchedAt}, nil
}
