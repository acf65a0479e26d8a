// Package seed loads the demo dataset: one manager account, a small menu,
// fifteen tables and a few in-flight orders on the occupied ones.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"restaurant-pos/internal/models"
	"restaurant-pos/internal/store"
)

type menuItemSeed struct {
	category        string
	name            string
	description     string
	price           string
	image           string
	preparationTime int
	order           int
}

var categorySeeds = []models.MenuCategory{
	{Name: "Popular", Icon: "fas fa-star", Order: 0, IsActive: true},
	{Name: "Appetizers", Icon: "fas fa-bacon", Order: 1, IsActive: true},
	{Name: "Main Courses", Icon: "fas fa-drumstick-bite", Order: 2, IsActive: true},
	{Name: "Pizza", Icon: "fas fa-pizza-slice", Order: 3, IsActive: true},
	{Name: "Beverages", Icon: "fas fa-glass-martini-alt", Order: 4, IsActive: true},
	{Name: "Desserts", Icon: "fas fa-ice-cream", Order: 5, IsActive: true},
}

var menuItemSeeds = []menuItemSeed{
	{"Popular", "Gourmet Beef Burger", "Angus beef patty with aged cheddar, lettuce, tomato", "16.50", "https://images.unsplash.com/photo-1568901346375-23c9450c58cd", 15, 0},
	{"Popular", "Margherita Pizza", "Fresh tomato sauce, mozzarella, basil leaves", "18.00", "https://images.unsplash.com/photo-1574071318508-1cdbab80d002", 20, 1},
	{"Appetizers", "Caesar Salad", "Crisp romaine, parmesan, croutons, caesar dressing", "12.50", "https://images.unsplash.com/photo-1512621776951-a57141f2eefd", 10, 0},
	{"Main Courses", "Grilled Salmon", "Atlantic salmon with herbs and lemon butter", "24.00", "https://images.unsplash.com/photo-1467003909585-2f8a72700288", 25, 0},
	{"Desserts", "Chocolate Lava Cake", "Warm chocolate cake with molten center, vanilla ice cream", "9.50", "https://images.unsplash.com/photo-1551024506-0bccd828d307", 12, 0},
	{"Beverages", "Artisan Coffee", "Premium espresso blend with steamed milk", "4.50", "https://images.unsplash.com/photo-1544145945-f90425340c7e", 5, 0},
}

// Run populates st with the demo dataset. It is not idempotent and is
// meant for fresh stores only.
func Run(ctx context.Context, st store.Store) error {
	admin, err := st.CreateStaff(ctx, models.Staff{
		ID:        uuid.New(),
		Username:  "admin",
		Password:  "admin123",
		Name:      "Sarah Johnson",
		Role:      models.RoleManager,
		IsActive:  true,
		CreatedAt: time.Now(),
	})
	if err != nil {
		return fmt.Errorf("seeding staff: %w", err)
	}

	categoriesByName := make(map[string]models.MenuCategory, len(categorySeeds))
	for _, seed := range categorySeeds {
		seed.ID = uuid.New()
		category, err := st.CreateMenuCategory(ctx, seed)
		if err != nil {
			return fmt.Errorf("seeding category %q: %w", seed.Name, err)
		}
		categoriesByName[category.Name] = category
	}

	var menuItems []models.MenuItem
	for _, seed := range menuItemSeeds {
		category, ok := categoriesByName[seed.category]
		if !ok {
			return fmt.Errorf("seeding item %q: unknown category %q", seed.name, seed.category)
		}
		item, err := st.CreateMenuItem(ctx, models.MenuItem{
			ID:              uuid.New(),
			CategoryID:      category.ID,
			Name:            seed.name,
			Description:     seed.description,
			Price:           models.MustMoney(seed.price),
			Image:           seed.image,
			IsAvailable:     true,
			PreparationTime: seed.preparationTime,
			Order:           seed.order,
		})
		if err != nil {
			return fmt.Errorf("seeding item %q: %w", seed.name, err)
		}
		menuItems = append(menuItems, item)
	}

	// Fifteen tables on a five-wide grid: 1-8 occupied, 9-12 available,
	// 13-15 reserved, matching the demo floor plan.
	var occupiedTables []models.Table
	for i := 1; i <= 15; i++ {
		seats := 4
		switch {
		case i > 10:
			seats = 8
		case i > 5:
			seats = 6
		}
		status := models.TableAvailable
		switch {
		case i <= 8:
			status = models.TableOccupied
		case i > 12:
			status = models.TableReserved
		}
		table, err := st.CreateTable(ctx, models.Table{
			ID:     uuid.New(),
			Number: i,
			Seats:  seats,
			Status: status,
			X:      (i - 1) % 5,
			Y:      (i - 1) / 5,
		})
		if err != nil {
			return fmt.Errorf("seeding table %d: %w", i, err)
		}
		if status == models.TableOccupied {
			occupiedTables = append(occupiedTables, table)
		}
	}

	return seedSampleOrders(ctx, st, admin, occupiedTables, menuItems)
}

func seedSampleOrders(ctx context.Context, st store.Store, admin models.Staff, tables []models.Table, menuItems []models.MenuItem) error {
	customers := []string{"Smith Party", "Johnson Family", "Wilson Group"}
	statuses := []models.OrderStatus{models.StatusPreparing, models.StatusReady, models.StatusPreparing}

	for i := 0; i < 3 && i < len(tables); i++ {
		number, err := st.NextOrderNumber(ctx)
		if err != nil {
			return fmt.Errorf("seeding orders: %w", err)
		}

		tableID := tables[i].ID
		createdAt := time.Now().Add(-time.Duration(i+1) * 10 * time.Minute)
		order := models.Order{
			ID:            uuid.New(),
			OrderNumber:   number,
			TableID:       &tableID,
			StaffID:       admin.ID,
			CustomerName:  customers[i],
			Status:        statuses[i],
			Subtotal:      models.MustMoney("45.50"),
			Tax:           models.MustMoney("3.75"),
			ServiceCharge: models.MustMoney("2.28"),
			Total:         models.MustMoney("51.53"),
			PaymentStatus: models.PaymentPending,
			CreatedAt:     createdAt,
			UpdatedAt:     time.Now(),
		}

		itemStatus := models.ItemPreparing
		if statuses[i] == models.StatusReady {
			itemStatus = models.ItemReady
		}
		var items []models.OrderItem
		for j := 0; j < 2+i && j < len(menuItems); j++ {
			items = append(items, models.OrderItem{
				ID:         uuid.New(),
				MenuItemID: menuItems[j].ID,
				Quantity:   1,
				Price:      menuItems[j].Price,
				Status:     itemStatus,
			})
		}

		if _, err := st.CreateOrder(ctx, order, items); err != nil {
			return fmt.Errorf("seeding orders: %w", err)
		}
	}

	return nil
}
