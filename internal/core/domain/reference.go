package domain

// Banks is the institution list offered by entry forms. Free-text values
// are still accepted; this is reference data, not a constraint.
var Banks = []string{
	"Pic Pay", "Mercado pago", "Nubank", "Itaú", "Caixa",
	"Bradesco", "Santander", "Unicred", "Sicoob", "Sicred", "Outro",
}

// PaymentMethods is the payment-method list offered by entry forms.
var PaymentMethods = []string{"Pix", "Débito em conta", "Cartão"}
