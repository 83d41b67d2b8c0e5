package handlers

import (
	"context"

	"cafe-analytics-services/internal/analytics"
	"cafe-analytics-services/internal/utils"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// loadSnapshot assembles the in-memory snapshot the analytics engine
// consumes. An inventory failure degrades to a nil slice instead of failing
// the whole report; any other load error aborts.
func (h *Handler) loadSnapshot(ctx context.Context) (analytics.Snapshot, bool, error) {
	orders, err := h.loadOrders(ctx)
	if err != nil {
		return analytics.Snapshot{}, false, err
	}
	menuItems, err := h.loadMenuItems(ctx)
	if err != nil {
		return analytics.Snapshot{}, false, err
	}
	categories, err := h.loadMenuCategories(ctx)
	if err != nil {
		return analytics.Snapshot{}, false, err
	}

	degraded := false
	inventory, err := h.loadInventoryItems(ctx)
	if err != nil {
		h.Logger.Warn("inventory fetch failed; continuing without inventory", zapError(err))
		inventory = nil
		degraded = true
	}

	return analytics.Snapshot{
		Orders:         orders,
		MenuItems:      menuItems,
		MenuCategories: categories,
		InventoryItems: inventory,
	}, degraded, nil
}

func (h *Handler) loadOrders(ctx context.Context) ([]analytics.Order, error) {
	rows, err := h.DB.Query(ctx, `
		select o.id, o.table_number, coalesce(o.customer_name, ''), o.status, o.payment_method, o.total_amount, o.created_at
		from orders o
		order by o.created_at desc`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]analytics.Order, 0)
	index := make(map[uuid.UUID]int)
	for rows.Next() {
		var (
			order analytics.Order
			id    pgtype.UUID
			total pgtype.Numeric
		)
		if err := rows.Scan(&id, &order.TableNumber, &order.CustomerName, &order.Status, &order.PaymentMethod, &total, &order.CreatedAt); err != nil {
			continue
		}
		order.ID = uuid.UUID(id.Bytes)
		order.TotalAmount = utils.NumericToFloat64(total)
		index[order.ID] = len(orders)
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := h.attachOrderItems(ctx, orders, index); err != nil {
		return nil, err
	}
	return orders, nil
}

func (h *Handler) attachOrderItems(ctx context.Context, orders []analytics.Order, index map[uuid.UUID]int) error {
	rows, err := h.DB.Query(ctx, `
		select i.id, i.order_id, i.item_name, i.quantity, i.price, i.created_at
		from order_items i
		order by i.created_at`)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			line      analytics.OrderItem
			id        pgtype.UUID
			orderID   pgtype.UUID
			price     pgtype.Numeric
			createdAt pgtype.Timestamptz
		)
		if err := rows.Scan(&id, &orderID, &line.ItemName, &line.Quantity, &price, &createdAt); err != nil {
			continue
		}
		line.ID = uuid.UUID(id.Bytes)
		line.OrderID = uuid.UUID(orderID.Bytes)
		line.Price = utils.NumericToFloat64(price)
		if createdAt.Valid {
			line.CreatedAt = createdAt.Time
		}

		pos, ok := index[line.OrderID]
		if !ok {
			continue
		}
		orders[pos].Items = append(orders[pos].Items, line)
	}
	return rows.Err()
}

func (h *Handler) loadMenuItems(ctx context.Context) ([]analytics.MenuItem, error) {
	rows, err := h.DB.Query(ctx, `
		select m.id, m.name, m.price, m.category_id
		from menu_items m
		order by m.name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]analytics.MenuItem, 0)
	for rows.Next() {
		var (
			item       analytics.MenuItem
			id         pgtype.UUID
			price      pgtype.Numeric
			categoryID pgtype.UUID
		)
		if err := rows.Scan(&id, &item.Name, &price, &categoryID); err != nil {
			continue
		}
		item.ID = uuid.UUID(id.Bytes)
		item.Price = utils.NumericToFloat64(price)
		if categoryID.Valid {
			item.CategoryID = uuid.UUID(categoryID.Bytes)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (h *Handler) loadMenuCategories(ctx context.Context) ([]analytics.MenuCategory, error) {
	rows, err := h.DB.Query(ctx, `
		select c.id, c.title, coalesce(c.note, ''), c."order"
		from menu_categories c
		order by c.title`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := make([]analytics.MenuCategory, 0)
	for rows.Next() {
		var (
			category analytics.MenuCategory
			id       pgtype.UUID
		)
		if err := rows.Scan(&id, &category.Title, &category.Note, &category.Order); err != nil {
			continue
		}
		category.ID = uuid.UUID(id.Bytes)
		categories = append(categories, category)
	}
	return categories, rows.Err()
}

func (h *Handler) loadInventoryItems(ctx context.Context) ([]analytics.InventoryItem, error) {
	rows, err := h.DB.Query(ctx, `
		select v.id, v.name, v.quantity, v.unit, v.min_quantity, v.cost_per_unit,
		       coalesce(v.category, ''), coalesce(v.supplier, ''), coalesce(v.location, ''), v.expiry_date
		from inventory_items v
		order by v.name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]analytics.InventoryItem, 0)
	for rows.Next() {
		var (
			item     analytics.InventoryItem
			id       pgtype.UUID
			quantity pgtype.Numeric
			minQty   pgtype.Numeric
			cost     pgtype.Numeric
			expiry   pgtype.Date
		)
		if err := rows.Scan(&id, &item.Name, &quantity, &item.Unit, &minQty, &cost, &item.Category, &item.Supplier, &item.Location, &expiry); err != nil {
			continue
		}
		item.ID = uuid.UUID(id.Bytes)
		item.Quantity = utils.NumericToFloat64(quantity)
		item.MinQuantity = utils.NumericToFloat64(minQty)
		item.CostPerUnit = utils.NumericToFloat64(cost)
		if expiry.Valid {
			expiryDate := expiry.Time
			item.ExpiryDate = &expiryDate
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
