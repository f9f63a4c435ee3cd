package recognize

import "reconciler/core/reconcile"

// FieldSynonyms lists, per semantic field type, the header fragments that
// identify it. Types are checked in declaration order.
var FieldSynonyms = []struct {
	FieldType string
	Synonyms  []string
}{
	{reconcile.FieldInvoiceNumber, []string{
		"invoice_no", "inv_no", "invoice_number", "inv_number", "bill_no", "bill_number",
		"invoice id", "inv id", "document_no", "doc_no", "reference", "ref_no",
	}},
	{reconcile.FieldDate, []string{
		"date", "invoice_date", "inv_date", "transaction_date", "txn_date", "posted_date",
		"created_date", "due_date", "issue_date", "billing_date",
	}},
	{reconcile.FieldAmount, []string{
		"amount", "total", "total_amount", "invoice_amount", "inv_amount", "net_amount",
		"gross_amount", "subtotal", "value", "price", "cost",
	}},
	{reconcile.FieldTax, []string{
		"tax", "vat", "tax_amount", "vat_amount", "sales_tax", "gst", "tax_value",
	}},
	{reconcile.FieldQuantity, []string{
		"quantity", "qty", "units", "count", "number_of_items", "items",
	}},
	{reconcile.FieldDescription, []string{
		"description", "desc", "item_description", "product_description", "details",
		"item_name", "product_name", "service_description",
	}},
	{reconcile.FieldSupplier, []string{
		"supplier", "vendor", "supplier_name", "vendor_name", "company", "company_name",
	}},
	{reconcile.FieldCustomer, []string{
		"customer", "client", "customer_name", "client_name", "buyer",
	}},
}

// fieldColors holds the badge classes shown next to each recognised type.
var fieldColors = map[string]string{
	reconcile.FieldInvoiceNumber: "bg-blue-100 text-blue-800 dark:bg-blue-900 dark:text-blue-200",
	reconcile.FieldDate:          "bg-green-100 text-green-800 dark:bg-green-900 dark:text-green-200",
	reconcile.FieldAmount:        "bg-purple-100 text-purple-800 dark:bg-purple-900 dark:text-purple-200",
	reconcile.FieldTax:           "bg-orange-100 text-orange-800 dark:bg-orange-900 dark:text-orange-200",
	reconcile.FieldQuantity:      "bg-yellow-100 text-yellow-800 dark:bg-yellow-900 dark:text-yellow-200",
	reconcile.FieldDescription:   "bg-gray-100 text-gray-800 dark:bg-gray-900 dark:text-gray-200",
	reconcile.FieldSupplier:      "bg-pink-100 text-pink-800 dark:bg-pink-900 dark:text-pink-200",
	reconcile.FieldCustomer:      "bg-indigo-100 text-indigo-800 dark:bg-indigo-900 dark:text-indigo-200",
}

const defaultColor = "bg-gray-100 text-gray-800 dark:bg-gray-900 dark:text-gray-200"

// Color returns the badge classes for a field type.
func Color(fieldType string) string {
	if c, ok := fieldColors[fieldType]; ok {
		return c
	}
	return defaultColor
}
