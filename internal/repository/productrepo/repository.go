package productrepo

import (
	"context" // Usamos o pacote context do Go
	"database/sql"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"

	"goloja/internal/domain"
	"goloja/internal/errors"
	"goloja/internal/pkg/cache"
	"goloja/internal/pkg/logger"
)

// ProductRepository implementa a interface domain.ProductRepository.
// Ela contém as conexões necessárias para acessar dados.
type ProductRepository struct {
	DB        *sql.DB      // Conexão principal com o banco de dados (PostgreSQL)
	Cache     cache.Client // Cliente para operações de cache (Redis)
	DBTimeout time.Duration
	CacheTTL  time.Duration
	logger    logger.Logger
}

// NewProductRepository cria e retorna uma nova instância do Repositório.
// Aqui injetamos as dependências de Infraestrutura (DB e Cache).
func NewProductRepository(db *sql.DB, cacheClient cache.Client, dbTimeout, cacheTTL time.Duration, log logger.Logger) *ProductRepository {
	return &ProductRepository{
		DB:        db,
		Cache:     cacheClient,
		DBTimeout: dbTimeout,
		CacheTTL:  cacheTTL,
		logger:    log,
	}
}

// Create persiste um novo Produto com suas Imagens e Opções numa única transação.
func (r *ProductRepository) Create(ctx context.Context, product domain.Product) (domain.Product, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	tx, err := r.DB.BeginTx(ctxTimeout, nil)
	if err != nil {
		return domain.Product{}, errors.NewDBError("failed to start tx", err)
	}

	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	const productSQL = `INSERT INTO produtos (enabled, name, slug, stock, description, price, price_with_discount, category_ids)
                        VALUES ($1,$2,$3,$4,$5,$6,$7,$8) RETURNING id`

	err = tx.QueryRowContext(ctxTimeout, productSQL,
		product.Enabled,
		product.Name,
		product.Slug,
		product.Stock,
		product.Description,
		product.Price,
		product.PriceWithDiscount,
		pq.Array(product.CategoryIDs),
	).Scan(&product.ID)
	if err != nil {
		return domain.Product{}, errors.NewDBError("failed to insert product", err)
	}

	const imageSQL = `INSERT INTO imagens_produto (product_id, path, enabled) VALUES ($1,$2,$3) RETURNING id`

	for i := range product.Images {
		img := &product.Images[i]
		img.ProductID = product.ID
		err = tx.QueryRowContext(ctxTimeout, imageSQL, img.ProductID, img.Path, img.Enabled).Scan(&img.ID)
		if err != nil {
			return domain.Product{}, errors.NewDBError("failed to insert images", err)
		}
	}

	const optionSQL = `INSERT INTO opcoes_produto (produtos_id, title, shape, radius, type, "values")
                       VALUES ($1,$2,$3,$4,$5,$6) RETURNING id`

	for i := range product.Options {
		opt := &product.Options[i]
		opt.ProductID = product.ID
		err = tx.QueryRowContext(ctxTimeout, optionSQL,
			opt.ProductID,
			opt.Title,
			opt.Shape,
			nullableInt(opt.Radius),
			opt.Type,
			opt.Values,
		).Scan(&opt.ID)
		if err != nil {
			return domain.Product{}, errors.NewDBError("failed to insert options", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return domain.Product{}, errors.NewDBError("failed to commit tx", err)
	}

	r.logger.Info("Produto criado no repositório.", map[string]interface{}{
		"product_id": product.ID,
		"images":     len(product.Images),
		"options":    len(product.Options),
	})
	return product, nil
}

// Define a chave de cache para produtos.
const productCacheKey = "product:%d"

const selectProduct = `SELECT id, enabled, name, slug, stock, description, price, price_with_discount, category_ids FROM produtos`

// FindByID busca um produto pelo ID, utilizando a estratégia Cache-Aside.
func (r *ProductRepository) FindByID(ctx context.Context, id int64) (domain.Product, error) {
	ctxGo, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	key := fmt.Sprintf(productCacheKey, id)

	// --- 1. Estratégia Cache-Aside (READ) ---
	if product, ok := r.readCache(ctxGo, key); ok {
		return product, nil
	}

	// --- 2. Busca no Banco de Dados (PostgreSQL) ---
	product, err := scanProduct(r.DB.QueryRowContext(ctxGo, selectProduct+` WHERE id = $1`, id))
	if stderrors.Is(err, sql.ErrNoRows) {
		// O Serviço receberá isso e o Handler o mapeará para 404.
		return domain.Product{}, errors.NewNotFoundError(fmt.Sprintf("Produto com ID %d não existe na base de dados.", id))
	}
	if err != nil {
		return domain.Product{}, errors.NewDBError("Falha ao buscar produto no DB", err)
	}

	products := []domain.Product{product}
	if err := r.loadChildren(ctxGo, products); err != nil {
		return domain.Product{}, err
	}
	product = products[0]

	// --- 3. Estratégia Cache-Aside (WRITE) ---
	productJSON, marshalErr := json.Marshal(product)
	if marshalErr == nil {
		if err := r.Cache.Set(ctxGo, key, productJSON, r.CacheTTL); err != nil {
			r.logger.Warn("Falha ao gravar produto no cache.", map[string]interface{}{"key": key, "error": err.Error()})
		}
	}

	return product, nil
}

// readCache devolve o produto em cache. Miss, entrada corrompida ou falha do cache caem no DB.
func (r *ProductRepository) readCache(ctx context.Context, key string) (domain.Product, bool) {
	cachedData, err := r.Cache.Get(ctx, key)
	if err != nil {
		if !stderrors.Is(err, cache.ErrCacheMiss) {
			// Erro real de cache (ex: conexão perdida)
			r.logger.Warn("Falha ao ler do cache.", map[string]interface{}{"key": key, "error": err.Error()})
		}
		return domain.Product{}, false
	}

	var product domain.Product
	if err := json.Unmarshal([]byte(cachedData), &product); err != nil {
		r.logger.Warn("Entrada de cache corrompida, consultando o DB.", map[string]interface{}{"key": key})
		return domain.Product{}, false
	}
	return product, true
}

// Search aplica filtros, ordena por id e pagina. Devolve também o total sem paginação.
func (r *ProductRepository) Search(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, int, error) {
	ctxGo, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	where, args := buildWhere(filter)

	var total int
	if err := r.DB.QueryRowContext(ctxGo, `SELECT COUNT(*) FROM produtos`+where, args...).Scan(&total); err != nil {
		return nil, 0, errors.NewDBError("failed to count products", err)
	}

	query := selectProduct + where + ` ORDER BY id`
	if filter.Limit >= 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		args = append(args, filter.Limit, (page-1)*filter.Limit)
		query += fmt.Sprintf(` LIMIT $%d OFFSET $%d`, len(args)-1, len(args))
	}

	rows, err := r.DB.QueryContext(ctxGo, query, args...)
	if err != nil {
		return nil, 0, errors.NewDBError("failed to search products", err)
	}
	defer rows.Close()

	products := make([]domain.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, 0, errors.NewDBError("failed to scan product", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, errors.NewDBError("failed to iterate products", err)
	}

	if err := r.loadChildren(ctxGo, products); err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

// buildWhere monta a cláusula WHERE com placeholders posicionais.
func buildWhere(filter domain.ProductFilter) (string, []interface{}) {
	var conds []string
	var args []interface{}

	if m := strings.TrimSpace(filter.Match); m != "" {
		args = append(args, "%"+m+"%")
		conds = append(conds, fmt.Sprintf("(name ILIKE $%d OR description ILIKE $%d)", len(args), len(args)))
	}
	if len(filter.CategoryIDs) > 0 {
		args = append(args, pq.Array(filter.CategoryIDs))
		conds = append(conds, fmt.Sprintf("category_ids && $%d::bigint[]", len(args)))
	}
	if filter.PriceMin != nil {
		args = append(args, *filter.PriceMin)
		conds = append(conds, fmt.Sprintf("price >= $%d", len(args)))
	}
	if filter.PriceMax != nil {
		args = append(args, *filter.PriceMax)
		conds = append(conds, fmt.Sprintf("price <= $%d", len(args)))
	}

	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// Update altera as colunas presentes no patch e invalida o cache.
func (r *ProductRepository) Update(ctx context.Context, id int64, patch domain.ProductPatch) error {
	ctxGo, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	sets := make([]string, 0, 9)
	args := make([]interface{}, 0, 9)
	add := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if patch.Enabled != nil {
		add("enabled", *patch.Enabled)
	}
	if patch.Name != nil {
		add("name", *patch.Name)
	}
	if patch.Slug != nil {
		add("slug", *patch.Slug)
	}
	if patch.Stock != nil {
		add("stock", *patch.Stock)
	}
	if patch.Description != nil {
		add("description", *patch.Description)
	}
	if patch.Price != nil {
		add("price", *patch.Price)
	}
	if patch.PriceWithDiscount != nil {
		add("price_with_discount", *patch.PriceWithDiscount)
	}
	if patch.CategoryIDs != nil {
		add("category_ids", pq.Array(patch.CategoryIDs))
	}
	if len(sets) == 0 {
		return errors.NewValidationError("nenhum campo para atualizar")
	}
	sets = append(sets, "updated_at = NOW()")
	args = append(args, id)

	query := fmt.Sprintf(`UPDATE produtos SET %s WHERE id = $%d`, strings.Join(sets, ", "), len(args))
	res, err := r.DB.ExecContext(ctxGo, query, args...)
	if err != nil {
		return errors.NewDBError("failed to update product", err)
	}
	if err := requireAffected(res, id); err != nil {
		return err
	}

	r.invalidate(ctxGo, id)
	return nil
}

// Delete remove o produto (imagens e opções caem em cascata) e invalida o cache.
func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	ctxGo, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	res, err := r.DB.ExecContext(ctxGo, `DELETE FROM produtos WHERE id = $1`, id)
	if err != nil {
		return errors.NewDBError("failed to delete product", err)
	}
	if err := requireAffected(res, id); err != nil {
		return err
	}

	r.invalidate(ctxGo, id)
	return nil
}

func (r *ProductRepository) invalidate(ctx context.Context, id int64) {
	key := fmt.Sprintf(productCacheKey, id)
	if err := r.Cache.Delete(ctx, key); err != nil {
		r.logger.Warn("Falha ao invalidar cache do produto.", map[string]interface{}{"key": key, "error": err.Error()})
	}
}

// loadChildren carrega imagens e opções de todos os produtos com duas consultas.
func (r *ProductRepository) loadChildren(ctx context.Context, products []domain.Product) error {
	if len(products) == 0 {
		return nil
	}

	ids := make([]int64, len(products))
	index := make(map[int64]int, len(products))
	for i := range products {
		ids[i] = products[i].ID
		index[products[i].ID] = i
		products[i].Images = []domain.Image{}
		products[i].Options = []domain.Option{}
	}

	imgRows, err := r.DB.QueryContext(ctx,
		`SELECT id, product_id, path, enabled FROM imagens_produto WHERE product_id = ANY($1) ORDER BY id`,
		pq.Array(ids))
	if err != nil {
		return errors.NewDBError("failed to load images", err)
	}
	defer imgRows.Close()
	for imgRows.Next() {
		var img domain.Image
		if err := imgRows.Scan(&img.ID, &img.ProductID, &img.Path, &img.Enabled); err != nil {
			return errors.NewDBError("failed to scan image", err)
		}
		i := index[img.ProductID]
		products[i].Images = append(products[i].Images, img)
	}
	if err := imgRows.Err(); err != nil {
		return errors.NewDBError("failed to iterate images", err)
	}

	optRows, err := r.DB.QueryContext(ctx,
		`SELECT id, produtos_id, title, shape, radius, type, "values" FROM opcoes_produto WHERE produtos_id = ANY($1) ORDER BY id`,
		pq.Array(ids))
	if err != nil {
		return errors.NewDBError("failed to load options", err)
	}
	defer optRows.Close()
	for optRows.Next() {
		var opt domain.Option
		var radius sql.NullInt64
		if err := optRows.Scan(&opt.ID, &opt.ProductID, &opt.Title, &opt.Shape, &radius, &opt.Type, &opt.Values); err != nil {
			return errors.NewDBError("failed to scan option", err)
		}
		if radius.Valid {
			v := int(radius.Int64)
			opt.Radius = &v
		}
		i := index[opt.ProductID]
		products[i].Options = append(products[i].Options, opt)
	}
	if err := optRows.Err(); err != nil {
		return errors.NewDBError("failed to iterate options", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanProduct(row scanner) (domain.Product, error) {
	var p domain.Product
	err := row.Scan(
		&p.ID,
		&p.Enabled,
		&p.Name,
		&p.Slug,
		&p.Stock,
		&p.Description,
		&p.Price,
		&p.PriceWithDiscount,
		pq.Array(&p.CategoryIDs),
	)
	return p, err
}

func requireAffected(res sql.Result, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return errors.NewDBError("failed to read affected rows", err)
	}
	if n == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("Produto com ID %d não existe na base de dados.", id))
	}
	return nil
}

func nullableInt(v *int) interface{} {
	if v == nil {
		return nil
	}
	return *v
}
