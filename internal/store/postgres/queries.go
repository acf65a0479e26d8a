package postgres

// Staff queries
const (
	getStaffSQL = `
		SELECT id, username, password, name, role, is_active, created_at, revision
		FROM staff WHERE id = $1`

	getStaffByUsernameSQL = `
		SELECT id, username, password, name, role, is_active, created_at, revision
		FROM staff WHERE username = $1`

	listStaffSQL = `
		SELECT id, username, password, name, role, is_active, created_at, revision
		FROM staff ORDER BY created_at ASC`

	insertStaffSQL = `
		INSERT INTO staff (id, username, password, name, role, is_active, created_at, revision)
		VALUES ($1, $2, $3, $4, $5, $6, $7, 1)
		RETURNING id, username, password, name, role, is_active, created_at, revision`

	updateStaffSQL = `
		UPDATE staff SET name = $1, role = $2, is_active = $3, revision = revision + 1
		WHERE id = $4 AND revision = $5
		RETURNING id, username, password, name, role, is_active, created_at, revision`
)

// Catalog queries
const (
	listMenuCategoriesSQL = `
		SELECT id, name, icon, display_order, is_active
		FROM menu_categories ORDER BY display_order ASC`

	insertMenuCategorySQL = `
		INSERT INTO menu_categories (id, name, icon, display_order, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, icon, display_order, is_active`

	getMenuItemSQL = `
		SELECT id, category_id, name, description, price::text, image, is_available,
			   preparation_time, display_order, revision
		FROM menu_items WHERE id = $1`

	listMenuItemsSQL = `
		SELECT id, category_id, name, description, price::text, image, is_available,
			   preparation_time, display_order, revision
		FROM menu_items ORDER BY display_order ASC`

	listMenuItemsByCategorySQL = `
		SELECT id, category_id, name, description, price::text, image, is_available,
			   preparation_time, display_order, revision
		FROM menu_items WHERE category_id = $1 ORDER BY display_order ASC`

	insertMenuItemSQL = `
		INSERT INTO menu_items (id, category_id, name, description, price, image,
			   is_available, preparation_time, display_order, revision)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, 1)
		RETURNING id, category_id, name, description, price::text, image, is_available,
			   preparation_time, display_order, revision`

	updateMenuItemSQL = `
		UPDATE menu_items SET name = $1, description = $2, price = $3, image = $4,
			   is_available = $5, preparation_time = $6, display_order = $7,
			   revision = revision + 1
		WHERE id = $8 AND revision = $9
		RETURNING id, category_id, name, description, price::text, image, is_available,
			   preparation_time, display_order, revision`
)

// Table queries
const (
	getTableSQL = `
		SELECT id, number, seats, status, grid_x, grid_y, revision
		FROM tables WHERE id = $1`

	listTablesSQL = `
		SELECT id, number, seats, status, grid_x, grid_y, revision
		FROM tables ORDER BY number ASC`

	insertTableSQL = `
		INSERT INTO tables (id, number, seats, status, grid_x, grid_y, revision)
		VALUES ($1, $2, $3, $4, $5, $6, 1)
		RETURNING id, number, seats, status, grid_x, grid_y, revision`

	updateTableSQL = `
		UPDATE tables SET seats = $1, status = $2, grid_x = $3, grid_y = $4,
			   revision = revision + 1
		WHERE id = $5 AND revision = $6
		RETURNING id, number, seats, status, grid_x, grid_y, revision`
)

// Order queries
const (
	orderColumns = `id, order_number, table_id, staff_id, customer_name, status,
			   subtotal::text, tax::text, service_charge::text, total::text,
			   payment_method, payment_status, notes, created_at, updated_at, revision`

	getOrderSQL = `
		SELECT ` + orderColumns + `
		FROM orders WHERE id = $1`

	listOrdersSQL = `
		SELECT ` + orderColumns + `
		FROM orders ORDER BY created_at ASC`

	listActiveOrdersSQL = `
		SELECT ` + orderColumns + `
		FROM orders WHERE status NOT IN ('paid', 'cancelled')
		ORDER BY created_at ASC`

	insertOrderSQL = `
		INSERT INTO orders (id, order_number, table_id, staff_id, customer_name, status,
			   subtotal, tax, service_charge, total, payment_method, payment_status,
			   notes, created_at, updated_at, revision)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, 1)
		RETURNING ` + orderColumns

	updateOrderSQL = `
		UPDATE orders SET customer_name = $1, status = $2, payment_method = $3,
			   payment_status = $4, notes = $5, updated_at = $6, revision = revision + 1
		WHERE id = $7 AND revision = $8
		RETURNING ` + orderColumns

	nextOrderNumberSQL = `SELECT nextval('order_number_seq')`
)

// Order item queries
const (
	orderItemColumns = `id, order_id, menu_item_id, quantity, price::text, modifications, status, revision`

	getOrderItemSQL = `
		SELECT ` + orderItemColumns + `
		FROM order_items WHERE id = $1`

	listOrderItemsSQL = `
		SELECT ` + orderItemColumns + `
		FROM order_items WHERE order_id = $1 ORDER BY id ASC`

	insertOrderItemSQL = `
		INSERT INTO order_items (id, order_id, menu_item_id, quantity, price,
			   modifications, status, revision)
		VALUES ($1, $2, $3, $4, $5, $6, $7, 1)`

	updateOrderItemSQL = `
		UPDATE order_items SET status = $1, revision = revision + 1
		WHERE id = $2 AND revision = $3
		RETURNING ` + orderItemColumns
)

// Existence checks used to tell a stale revision from a missing row.
const (
	orderExistsSQL     = `SELECT EXISTS (SELECT 1 FROM orders WHERE id = $1)`
	orderItemExistsSQL = `SELECT EXISTS (SELECT 1 FROM order_items WHERE id = $1)`
	tableExistsSQL     = `SELECT EXISTS (SELECT 1 FROM tables WHERE id = $1)`
	menuItemExistsSQL  = `SELECT EXISTS (SELECT 1 FROM menu_items WHERE id = $1)`
	staffExistsSQL     = `SELECT EXISTS (SELECT 1 FROM staff WHERE id = $1)`
)
