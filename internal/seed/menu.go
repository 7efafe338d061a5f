// Package seed holds the static default catalog inserted on first run.
package seed

import (
	"github.com/shopspring/decimal"
)

type Item struct {
	Name          string
	Price         *decimal.Decimal
	PriceDrink    *decimal.Decimal
	PriceTakeaway *decimal.Decimal
}

type Category struct {
	Name  string
	Items []Item
}

func d(v float64) *decimal.Decimal {
	x := decimal.NewFromFloat(v)
	return &x
}

// DefaultMenu is seeded in list order: category SortOrder follows the slice
// index. Items either carry a single Price or the drink/takeaway pair.
var DefaultMenu = []Category{
	{
		Name: "Cervejas 600mL",
		Items: []Item{
			{Name: "Stella", PriceDrink: d(13.0), PriceTakeaway: d(12.0)},
			{Name: "Original", PriceDrink: d(11.0), PriceTakeaway: d(10.0)},
			{Name: "Brahma Duplo", PriceDrink: d(10.0), PriceTakeaway: d(9.0)},
			{Name: "Brahma", PriceDrink: d(10.0), PriceTakeaway: d(9.0)},
			{Name: "Heineken", PriceDrink: d(15.0), PriceTakeaway: d(13.0)},
			{Name: "Amstel", PriceDrink: d(10.0), PriceTakeaway: d(9.0)},
			{Name: "Eisenbahn", PriceDrink: d(10.0), PriceTakeaway: d(9.0)},
			{Name: "Antarctica Boa", PriceDrink: d(8.0), PriceTakeaway: d(7.0)},
			{Name: "Kaiser", PriceDrink: d(7.0), PriceTakeaway: d(6.0)},
			{Name: "Corona", PriceDrink: d(16.0), PriceTakeaway: d(15.0)},
			{Name: "Skol", PriceDrink: d(9.0), PriceTakeaway: d(8.0)},
			{Name: "Bohemia", PriceDrink: d(10.0), PriceTakeaway: d(9.0)},
			{Name: "Spaten", PriceDrink: d(11.0), PriceTakeaway: d(10.0)},
		},
	},
	{
		Name: "Litrinho",
		Items: []Item{
			{Name: "Brahma", Price: d(4.0)},
			{Name: "Original", Price: d(4.5)},
			{Name: "Antarctica", Price: d(3.5)},
			{Name: "Budweiser", Price: d(4.0)},
		},
	},
	{
		Name: "Cerveja Lata",
		Items: []Item{
			{Name: "Budweiser Zero Lata", Price: d(6.5)},
			{Name: "Ecobier Lata", Price: d(5.0)},
		},
	},
	{
		Name: "Long Neck",
		Items: []Item{
			{Name: "Corona", Price: d(11.0)},
			{Name: "Heineken", Price: d(10.0)},
			{Name: "Stella Artois", Price: d(8.0)},
			{Name: "Stella Pure Gold", Price: d(8.0)},
			{Name: "Spaten", Price: d(7.0)},
			{Name: "Budweiser", Price: d(7.0)},
			{Name: "Imperio", Price: d(7.0)},
			{Name: "Sol Zero", Price: d(7.0)},
			{Name: "Budweiser Zero", Price: d(7.0)},
			{Name: "Corona Zero", Price: d(11.0)},
			{Name: "Brahma Malzbier", Price: d(7.0)},
			{Name: "Heineken Zero", Price: d(10.0)},
			{Name: "Stella Golden", Price: d(8.0)},
		},
	},
	{
		Name: "Refrigerantes 2L",
		Items: []Item{
			{Name: "Coca-Cola", PriceDrink: d(13.0), PriceTakeaway: d(12.0)},
			{Name: "Coca-Cola Retornável", PriceDrink: d(11.0), PriceTakeaway: d(10.0)},
			{Name: "Fanta", PriceDrink: d(12.0), PriceTakeaway: d(11.0)},
			{Name: "Antarctica", PriceDrink: d(12.0), PriceTakeaway: d(11.0)},
			{Name: "Pepsi", PriceDrink: d(12.0), PriceTakeaway: d(11.0)},
			{Name: "Soda", PriceDrink: d(11.0), PriceTakeaway: d(10.0)},
			{Name: "Sukita", PriceDrink: d(10.0), PriceTakeaway: d(10.0)},
			{Name: "Kuat", PriceDrink: d(9.0), PriceTakeaway: d(8.0)},
			{Name: "Sprite", PriceDrink: d(12.0), PriceTakeaway: d(11.0)},
		},
	},
	{
		Name: "Outros Refrigerantes",
		Items: []Item{
			{Name: "Coca-Cola 1L", Price: d(8.0)},
			{Name: "Guaraná 1L", Price: d(7.0)},
			{Name: "Guaraná 600mL", Price: d(6.0)},
			{Name: "Refrigerante Lata", Price: d(5.0)},
			{Name: "Refrigerante KS", Price: d(4.5)},
			{Name: "Pitchulinha", Price: d(3.0)},
		},
	},
	{
		Name: "Doces",
		Items: []Item{
			{Name: "Trento", Price: d(3.0)},
			{Name: "Paçoca", Price: d(0.5)},
			{Name: "Pé de Moça", Price: d(2.0)},
			{Name: "Doce de Leite", Price: d(2.0)},
			{Name: "Geleia Mocotó", Price: d(3.0)},
			{Name: "Bala de Goma", Price: d(1.5)},
			{Name: "Pirulito Pop G", Price: d(1.0)},
			{Name: "Pirulito Pop P", Price: d(0.5)},
			{Name: "Bala Macia", Price: d(0.15)},
			{Name: "Bala Ice Kiss", Price: d(0.15)},
			{Name: "Doce Amendoim", Price: d(3.0)},
			{Name: "Doce Amendoim Tony", Price: d(2.0)},
		},
	},
	{
		Name: "Padaria",
		Items: []Item{
			{Name: "Caxambu Recheado", Price: d(11.0)},
			{Name: "Casadinho", Price: d(9.0)},
			{Name: "Pão Sovado Caxambu", Price: d(11.0)},
			{Name: "Pão de Forma Caxambu", Price: d(8.0)},
			{Name: "Papa Ovo", Price: d(7.5)},
			{Name: "Bisnaguinha", Price: d(9.0)},
			{Name: "Estouradinho de Queijo", Price: d(10.0)},
			{Name: "Rosca Leite com Coco", Price: d(12.5)},
			{Name: "Torradinha com Queijo", Price: d(10.0)},
			{Name: "Polvilho Palito", Price: d(7.5)},
			{Name: "Pão de Hot Dog", Price: d(11.0)},
			{Name: "Pão de Hambúrguer", Price: d(11.0)},
		},
	},
	{
		Name: "Bebidas sem álcool",
		Items: []Item{
			{Name: "H2OH! limão 500mL", Price: d(6.0)},
			{Name: "H2OH! limoneto 500mL", Price: d(6.0)},
			{Name: "Red Bull 250mL", Price: d(12.0)},
			{Name: "Gatorade 500mL", Price: d(7.0)},
			{Name: "Monster", Price: d(12.0)},
			{Name: "Água mineral 500mL", Price: d(2.5)},
			{Name: "Água 1,5L", Price: d(4.0)},
			{Name: "Água com gás menor", Price: d(3.0)},
			{Name: "Água com gás maior", Price: d(6.0)},
			{Name: "Água de coco", Price: d(3.0)},
			{Name: "Red Bull 473mL", Price: d(15.0)},
		},
	},
	{
		Name: "Bebidas Alcoólicas",
		Items: []Item{
			{Name: "Xá de Cana", Price: d(15.0)},
			{Name: "Ice Leev Maracuja", Price: d(8.0)},
			{Name: "Ice Kislla", Price: d(5.0)},
			{Name: "Canelinha", Price: d(8.0)},
			{Name: "Beats Long Neck sabores", Price: d(10.0)},
			{Name: "Beats Senses 269mL", Price: d(8.0)},
			{Name: "Beats Gin", Price: d(8.0)},
			{Name: "Beats Red Mix", Price: d(8.0)},
			{Name: "Beats Tropical", Price: d(8.0)},
			{Name: "Beats Gt", Price: d(8.0)},
			{Name: "Beats Caipirinha", Price: d(8.0)},
		},
	},
}
