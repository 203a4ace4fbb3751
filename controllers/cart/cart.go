package cartControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/paintstore-api/controllers/httperr"
	"github.com/junaidrashid-git/paintstore-api/models"
	"github.com/junaidrashid-git/paintstore-api/session"
	"github.com/junaidrashid-git/paintstore-api/store"
	"github.com/shopspring/decimal"
)

type CartItemInput struct {
	ProductID string          `json:"productId" binding:"required"`
	ColorID   string          `json:"colorId" binding:"required"`
	FinishID  string          `json:"finishId" binding:"required"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity" binding:"required"`
	Price     decimal.Decimal `json:"price"`
}

type UpdateQuantityInput struct {
	ProductID string `json:"productId" binding:"required"`
	ColorID   string `json:"colorId" binding:"required"`
	FinishID  string `json:"finishId" binding:"required"`
	Quantity  *int   `json:"quantity" binding:"required"`
}

type SetOpenInput struct {
	Open *bool `json:"open" binding:"required"`
}

// CartView is the cart as returned to clients.
type CartView struct {
	Items      []models.LineItem `json:"items"`
	TotalItems int               `json:"totalItems"`
	TotalPrice decimal.Decimal   `json:"totalPrice"`
	IsOpen     bool              `json:"isOpen"`
}

func NewCartView(c *store.Cart) CartView {
	return CartView{
		Items:      c.Items(),
		TotalItems: c.TotalItems(),
		TotalPrice: c.TotalPrice(),
		IsOpen:     c.IsOpen(),
	}
}

// GET /cart
func GetCart(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var view CartView
		err := sessions.View(c.Request.Context(), c.GetString("session_id"), func(st *session.State) error {
			view = NewCartView(st.Cart)
			return nil
		})
		if err != nil {
			httperr.Abort(c, err)
			return
		}
		c.JSON(http.StatusOK, view)
	}
}

// POST /cart/items
func AddCartItem(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		op := store.AddItemOp{Item: models.LineItem{
			ProductID: input.ProductID,
			ColorID:   input.ColorID,
			FinishID:  input.FinishID,
			Name:      input.Name,
			Quantity:  input.Quantity,
			Price:     input.Price,
		}}
		applyCartOp(c, sessions, op, http.StatusCreated)
	}
}

// PATCH /cart/items
func UpdateCartItem(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input UpdateQuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		op := store.UpdateQuantityOp{
			Key:      models.ItemKey{ProductID: input.ProductID, ColorID: input.ColorID, FinishID: input.FinishID},
			Quantity: *input.Quantity,
		}
		applyCartOp(c, sessions, op, http.StatusOK)
	}
}

// DELETE /cart/items?productId=&colorId=&finishId=
func DeleteCartItem(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		op := store.RemoveItemOp{Key: models.ItemKey{
			ProductID: c.Query("productId"),
			ColorID:   c.Query("colorId"),
			FinishID:  c.Query("finishId"),
		}}
		applyCartOp(c, sessions, op, http.StatusOK)
	}
}

// DELETE /cart
func ClearCart(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		applyCartOp(c, sessions, store.ClearCartOp{}, http.StatusOK)
	}
}

// PUT /cart/open
func SetCartOpen(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input SetOpenInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		applyCartOp(c, sessions, store.SetOpenOp{Open: *input.Open}, http.StatusOK)
	}
}

func applyCartOp(c *gin.Context, sessions *session.Manager, op store.CartOp, status int) {
	var view CartView
	err := sessions.With(c.Request.Context(), c.GetString("session_id"), func(st *session.State) error {
		if err := st.Cart.Apply(op); err != nil {
			return err
		}
		view = NewCartView(st.Cart)
		return nil
	})
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(status, view)
}
