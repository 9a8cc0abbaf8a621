package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/nordixdotma/ayounioptic/models"
	"github.com/nordixdotma/ayounioptic/store"
	"github.com/nordixdotma/ayounioptic/upstream"
)

var (
	ErrCartEmpty     = errors.New("Votre panier est vide.")
	ErrNameMissing   = errors.New("Le nom complet est requis.")
	ErrPhoneMissing  = errors.New("Le numéro de téléphone est requis.")
	ErrOrderNotFound = errors.New("Commande introuvable.")
)

// CheckoutService turns a cart into a commande. Submitting validates the
// form, posts the order upstream, records a local snapshot under the
// ayouni-orders key, adds the order to the admin cache, notifies feed
// subscribers and clears the cart — in that order, so a backend failure
// leaves everything untouched.
type CheckoutService struct {
	client         *upstream.Client
	adminStore     *store.AdminStore
	local          store.Persister
	log            *logrus.Logger
	validate       *validator.Validate
	whatsAppNumber string
	notify         func(models.Order)
}

func NewCheckoutService(client *upstream.Client, adminStore *store.AdminStore, local store.Persister, log *logrus.Logger, whatsAppNumber string) *CheckoutService {
	return &CheckoutService{
		client:         client,
		adminStore:     adminStore,
		local:          local,
		log:            log,
		validate:       validator.New(),
		whatsAppNumber: whatsAppNumber,
	}
}

// OnOrder registers the callback invoked with each order created through
// checkout (the admin live feed).
func (s *CheckoutService) OnOrder(fn func(models.Order)) {
	s.notify = fn
}

// Submit places the order for the given cart.
func (s *CheckoutService) Submit(ctx context.Context, cart *store.CartStore, info models.CustomerInfo) (models.Order, error) {
	state := cart.State()
	if len(state.Items) == 0 {
		return models.Order{}, ErrCartEmpty
	}
	if err := s.validate.Struct(info); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			if fieldErrs[0].Field() == "Phone" {
				return models.Order{}, ErrPhoneMissing
			}
			return models.Order{}, ErrNameMissing
		}
		return models.Order{}, err
	}

	refs := make([]models.OrderProductRef, 0, len(state.Items))
	for _, item := range state.Items {
		refs = append(refs, models.OrderProductRef{ID: item.ID, Quantity: item.Quantity})
	}

	commande, err := s.client.CreateCommande(ctx, upstream.CreateCommandeParams{
		ClientName:  info.FullName,
		ClientPhone: info.Phone,
		Products:    refs,
		Status:      models.OrderStatusPending.BackendLabel(),
	})
	if err != nil {
		return models.Order{}, err
	}

	s.recordSnapshot(state, info)

	adminState := s.adminStore.State()
	order := models.CommandeToOrder(commande, adminState.Products, adminState.Categories, adminState.Types)
	order.Address = info.Address
	if len(order.Items) == 0 {
		// Backend echoed no product refs; keep the cart's view of the order.
		order.Items = state.Items
		order.TotalPrice = state.TotalPrice
	}
	s.adminStore.AddOrder(order)

	if s.notify != nil {
		s.notify(order)
	}
	cart.Clear()

	s.log.WithFields(logrus.Fields{
		"commande": commande.ID,
		"items":    len(state.Items),
		"total":    state.TotalPrice,
	}).Info("order placed")
	return order, nil
}

// recordSnapshot appends the checkout-time cart state to the locally kept
// order history. Local history is best effort; failures are only logged.
func (s *CheckoutService) recordSnapshot(state store.CartState, info models.CustomerInfo) {
	if s.local == nil {
		return
	}
	items := make([]models.OrderSnapshotItem, 0, len(state.Items))
	for _, item := range state.Items {
		items = append(items, models.OrderSnapshotItem{
			ID:                   item.ID,
			Name:                 item.Name,
			Price:                item.Price,
			Quantity:             item.Quantity,
			Category:             item.Category,
			Type:                 item.Type,
			PrescriptionFileName: item.PrescriptionFileName,
			Size:                 item.Size,
			Color:                item.Color,
			GlassType:            item.GlassType,
		})
	}
	snapshot := models.OrderSnapshot{
		ID:           uuid.NewString(),
		Date:         time.Now().Format(time.RFC3339),
		CustomerInfo: info,
		Items:        items,
		TotalPrice:   state.TotalPrice,
		TotalItems:   state.TotalItems,
	}

	var history []models.OrderSnapshot
	if _, err := s.local.Load(store.KeyLocalOrders, &history); err != nil {
		s.log.WithError(err).Warn("failed to load local order history")
	}
	history = append(history, snapshot)
	if err := s.local.Save(store.KeyLocalOrders, history); err != nil {
		s.log.WithError(err).Warn("failed to save local order history")
	}
}

// LocalOrders returns the locally recorded order snapshots.
func (s *CheckoutService) LocalOrders() []models.OrderSnapshot {
	var history []models.OrderSnapshot
	if s.local == nil {
		return history
	}
	if _, err := s.local.Load(store.KeyLocalOrders, &history); err != nil {
		s.log.WithError(err).Warn("failed to load local order history")
	}
	return history
}

// WhatsAppLink builds the wa.me deep link carrying the cart as an
// itemized French message.
func (s *CheckoutService) WhatsAppLink(cart *store.CartStore) string {
	state := cart.State()
	var b strings.Builder
	b.WriteString("Bonjour, je souhaite commander:\n\n")
	for i, item := range state.Items {
		fmt.Fprintf(&b, "%d. %s\n", i+1, item.Name)
		fmt.Fprintf(&b, "   - Quantité: %d\n", item.Quantity)
		fmt.Fprintf(&b, "   - Prix: %g DH\n", item.Price)
		if item.PrescriptionFileName != "" {
			fmt.Fprintf(&b, "   - Ordonnance: %s\n", item.PrescriptionFileName)
		}
		if item.GlassType != "" {
			fmt.Fprintf(&b, "   - Type de verre: %s\n", item.GlassType)
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "Total: %.2f DH\n\n", state.TotalPrice)
	b.WriteString("Merci!")
	return fmt.Sprintf("https://wa.me/%s?text=%s", s.whatsAppNumber, url.QueryEscape(b.String()))
}
