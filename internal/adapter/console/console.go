package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/yushi512/mitasai-casher/internal/core/service"
)

// Console is the terminal stand-in for the original touch UI. It owns no
// business state beyond the active screen; everything it shows is re-pulled
// from the services after each command, and every error becomes a status
// line rather than a crash.
type Console struct {
	catalog *service.CatalogService
	cart    *service.CartService
	sales   *service.SalesService

	in  io.Reader
	out io.Writer

	admin bool
}

func New(catalog *service.CatalogService, cart *service.CartService, sales *service.SalesService, in io.Reader, out io.Writer) *Console {
	return &Console{catalog: catalog, cart: cart, sales: sales, in: in, out: out}
}

// Run processes commands until EOF or quit.
func (c *Console) Run(ctx context.Context) error {
	fmt.Fprintln(c.out, "mitasai-casher — type 'help' for commands")
	c.render()

	scanner := bufio.NewScanner(c.in)
	for {
		fmt.Fprint(c.out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(c.out)
			return scanner.Err()
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if fields[0] == "quit" || fields[0] == "exit" {
			return nil
		}
		c.dispatch(ctx, fields)
	}
}

func (c *Console) dispatch(ctx context.Context, args []string) {
	var err error
	switch cmd := args[0]; cmd {
	case "help":
		c.printHelp()
		return
	case "register":
		c.admin = false
	case "admin":
		c.admin = true
	case "inc", "dec":
		err = c.adjust(args, cmd == "inc")
	case "discount":
		err = c.selectDiscount(args)
	case "checkout":
		err = c.checkout(ctx)
	case "reset":
		c.cart.Clear()
		c.status("cart reset")
	case "export":
		err = c.export(ctx)
	case "add-product":
		err = c.addProduct(ctx, args)
	case "price":
		err = c.setPrice(ctx, args)
	case "del-product":
		err = c.deleteProduct(ctx, args)
	case "add-discount":
		err = c.addDiscount(ctx, args)
	case "rate":
		err = c.setRate(ctx, args)
	case "del-discount":
		err = c.deleteDiscount(ctx, args)
	default:
		c.status("unknown command %q, try 'help'", cmd)
		return
	}
	if err != nil {
		c.status("error: %v", err)
		return
	}
	c.render()
}

var errUsage = errors.New("wrong arguments, see 'help'")

func (c *Console) adjust(args []string, up bool) error {
	if len(args) != 2 {
		return errUsage
	}
	id, err := c.resolveProduct(args[1])
	if err != nil {
		return err
	}
	delta := 1
	if !up {
		delta = -1
	}
	c.cart.AdjustQuantity(id, delta)
	return nil
}

func (c *Console) selectDiscount(args []string) error {
	if len(args) != 2 {
		return errUsage
	}
	id, err := c.resolveDiscount(args[1])
	if err != nil {
		return err
	}
	return c.catalog.SelectDiscount(id)
}

func (c *Console) checkout(ctx context.Context) error {
	sale, err := c.sales.Checkout(ctx)
	if err != nil {
		return err
	}
	c.status("sale %s recorded: total %s (%d items)",
		sale.ID, formatYen(sale.Total), sale.TotalQuantity)
	return nil
}

func (c *Console) export(ctx context.Context) error {
	path, err := c.sales.Export(ctx)
	if err != nil {
		return err
	}
	c.status("exported %s", path)
	return nil
}

func (c *Console) addProduct(ctx context.Context, args []string) error {
	// Name may contain spaces; the price is the last field.
	if len(args) < 3 {
		return errUsage
	}
	price, err := strconv.Atoi(args[len(args)-1])
	if err != nil {
		return service.ErrInvalidPrice
	}
	name := strings.Join(args[1:len(args)-1], " ")
	p, err := c.catalog.AddProduct(ctx, name, price)
	if err != nil {
		return err
	}
	c.status("added %s (%s)", p.Name, formatYen(p.Price))
	return nil
}

func (c *Console) setPrice(ctx context.Context, args []string) error {
	if len(args) != 3 {
		return errUsage
	}
	id, err := c.resolveProduct(args[1])
	if err != nil {
		return err
	}
	price, err := strconv.Atoi(args[2])
	if err != nil {
		return service.ErrInvalidPrice
	}
	return c.catalog.UpdateProductPrice(ctx, id, price)
}

func (c *Console) deleteProduct(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return errUsage
	}
	id, err := c.resolveProduct(args[1])
	if err != nil {
		return err
	}
	p, err := c.catalog.DeleteProduct(ctx, id)
	if err != nil {
		return err
	}
	c.status("deleted %s", p.Name)
	return nil
}

func (c *Console) addDiscount(ctx context.Context, args []string) error {
	if len(args) < 3 {
		return errUsage
	}
	rate, err := strconv.Atoi(args[len(args)-1])
	if err != nil {
		return service.ErrInvalidRate
	}
	label := strings.Join(args[1:len(args)-1], " ")
	d, err := c.catalog.AddDiscount(ctx, label, rate)
	if err != nil {
		return err
	}
	c.status("added discount %s (%d%%)", d.Label, d.Rate)
	return nil
}

func (c *Console) setRate(ctx context.Context, args []string) error {
	if len(args) != 3 {
		return errUsage
	}
	id, err := c.resolveDiscount(args[1])
	if err != nil {
		return err
	}
	rate, err := strconv.Atoi(args[2])
	if err != nil {
		return service.ErrInvalidRate
	}
	return c.catalog.UpdateDiscountRate(ctx, id, rate)
}

func (c *Console) deleteDiscount(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return errUsage
	}
	id, err := c.resolveDiscount(args[1])
	if err != nil {
		return err
	}
	d, err := c.catalog.DeleteDiscount(ctx, id)
	if err != nil {
		return err
	}
	c.status("deleted discount %s", d.Label)
	return nil
}

// resolveProduct accepts a 1-based list position or a raw product ID.
func (c *Console) resolveProduct(arg string) (string, error) {
	products := c.catalog.Products()
	if n, err := strconv.Atoi(arg); err == nil {
		if n < 1 || n > len(products) {
			return "", service.ErrProductNotFound
		}
		return products[n-1].ID, nil
	}
	if _, ok := c.catalog.FindProduct(arg); ok {
		return arg, nil
	}
	return "", service.ErrProductNotFound
}

// resolveDiscount accepts a 1-based list position or a raw discount ID.
func (c *Console) resolveDiscount(arg string) (string, error) {
	discounts := c.catalog.Discounts()
	if n, err := strconv.Atoi(arg); err == nil {
		if n < 1 || n > len(discounts) {
			return "", service.ErrDiscountNotFound
		}
		return discounts[n-1].ID, nil
	}
	if _, ok := c.catalog.FindDiscount(arg); ok {
		return arg, nil
	}
	return "", service.ErrDiscountNotFound
}

func (c *Console) render() {
	if c.admin {
		c.renderAdmin()
		return
	}
	c.renderRegister()
}

func (c *Console) renderRegister() {
	fmt.Fprintln(c.out, "--- register ---")
	for i, p := range c.catalog.Products() {
		fmt.Fprintf(c.out, "%3d. %-14s %8s  x%d\n",
			i+1, p.Name, formatYen(p.Price), c.cart.Quantity(p.ID))
	}

	items := c.cart.Items()
	if len(items) == 0 {
		fmt.Fprintln(c.out, "cart: (empty)")
	} else {
		fmt.Fprintln(c.out, "cart:")
		for _, item := range items {
			fmt.Fprintf(c.out, "     %s ×%d  %s\n",
				item.Name, item.Quantity, formatYen(item.LineTotal))
		}
	}

	totals := c.cart.Totals()
	fmt.Fprintf(c.out, "subtotal %s / discount -%s / total %s\n",
		formatYen(totals.Subtotal), formatYen(totals.DiscountAmount), formatYen(totals.Total))

	selected := c.catalog.SelectedDiscount()
	fmt.Fprintln(c.out, "discounts:")
	for i, d := range c.catalog.Discounts() {
		marker := " "
		if d.ID == selected.ID {
			marker = "*"
		}
		fmt.Fprintf(c.out, " %s %d. %s (%d%%)\n", marker, i+1, d.Label, d.Rate)
	}
}

func (c *Console) renderAdmin() {
	fmt.Fprintln(c.out, "--- admin ---")
	fmt.Fprintln(c.out, "products:")
	for i, p := range c.catalog.Products() {
		fmt.Fprintf(c.out, "%3d. %-14s %8s  [%s]\n", i+1, p.Name, formatYen(p.Price), p.ID)
	}
	fmt.Fprintln(c.out, "discounts:")
	for i, d := range c.catalog.Discounts() {
		note := ""
		if d.Rate == 0 {
			note = "  (protected)"
		}
		fmt.Fprintf(c.out, "%3d. %s (%d%%)  [%s]%s\n", i+1, d.Label, d.Rate, d.ID, note)
	}
	fmt.Fprintf(c.out, "sales recorded: %d\n", len(c.sales.Sales()))
}

func (c *Console) printHelp() {
	fmt.Fprint(c.out, `register screen:
  inc <n|id>            add one of a product
  dec <n|id>            remove one of a product
  discount <n|id>       select the active discount
  checkout              record the sale and export
  reset                 empty the cart
  export                export the sales ledger to xlsx
admin screen:
  add-product <name> <price>
  price <n|id> <price>
  del-product <n|id>
  add-discount <label> <rate>
  rate <n|id> <rate>
  del-discount <n|id>
other:
  register | admin      switch screens
  help | quit
`)
}

func (c *Console) status(format string, args ...any) {
	fmt.Fprintf(c.out, format+"\n", args...)
}

// formatYen renders a whole-yen amount with thousands grouping, e.g. ¥1,200.
func formatYen(n int) string {
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	s := strconv.Itoa(n)
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return sign + "¥" + b.String()
}
