// Package sqlinline holds the inline SQL used by the adapter layer. Each
// statement carries a stable marker comment so slow-query logs can be traced
// back to source.
package sqlinline

const QInsertRenderLog = `--sql 6f1e9d0b-3c58-4f5a-9a41-2d7c8f10be24
insert into render_logs(
  id,
  request_id,
  style_id,
  render_mode,
  room_type,
  attempts,
  source_audited,
  first_pass_match,
  final_compliant,
  mismatch_deltas,
  residual_deltas,
  source_inventory,
  duration_ms,
  created_at
)
values (
  gen_random_uuid(),
  $1, $2, $3, $4, $5, $6, $7, $8,
  $9::jsonb, $10::jsonb, $11::jsonb,
  $12,
  now()
)`

const QResidualNonComplianceRate = `--sql 1b0aa7c2-55f1-4f36-8c0e-e3a9b64d7f02
select
  count(*) filter (where not first_pass_match)::float / greatest(count(*), 1) as retry_rate,
  count(*) filter (where not final_compliant)::float / greatest(count(*), 1) as residual_rate,
  count(*) as total
from render_logs
where created_at > now() - interval '24 hours'`
