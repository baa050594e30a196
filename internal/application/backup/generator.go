package backup

import (
	"archive/zip"
	"bytes"
	"encoding/csv"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/optica-pro/internal/domain/entity"
)

// Dataset filas ya autorizadas y ya acotadas que alimentan un export. Los
// generadores son transformaciones puras: no consultan nada ni re-derivan
// alcance.
type Dataset struct {
	Stores    []*entity.Store
	Customers []*entity.Customer
	Checkups  []*entity.Checkup
	Orders    []*entity.Order
}

const schemaReferenceSQL = `-- Table Structure (for reference)
-- Note: These tables should already exist in your database

/*
CREATE TABLE IF NOT EXISTS stores (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  address TEXT,
  phone TEXT,
  email TEXT,
  pin_hash TEXT NOT NULL,
  created_at TIMESTAMPTZ NOT NULL,
  updated_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS customers (
  id TEXT PRIMARY KEY,
  store_id TEXT NOT NULL REFERENCES stores (id),
  name TEXT NOT NULL,
  phone TEXT NOT NULL,
  email TEXT,
  address TEXT,
  date_of_birth TEXT,
  remarks TEXT,
  created_at TIMESTAMPTZ NOT NULL,
  updated_at TIMESTAMPTZ NOT NULL,
  UNIQUE (store_id, phone)
);

CREATE TABLE IF NOT EXISTS checkups (
  id TEXT PRIMARY KEY,
  store_id TEXT NOT NULL REFERENCES stores (id),
  customer_id TEXT NOT NULL,
  date TEXT NOT NULL,
  right_eye_spherical_dv TEXT,
  right_eye_cylindrical_dv TEXT,
  right_eye_axis_dv TEXT,
  right_eye_spherical_nv TEXT,
  right_eye_cylindrical_nv TEXT,
  right_eye_axis_nv TEXT,
  left_eye_spherical_dv TEXT,
  left_eye_cylindrical_dv TEXT,
  left_eye_axis_dv TEXT,
  left_eye_spherical_nv TEXT,
  left_eye_cylindrical_nv TEXT,
  left_eye_axis_nv TEXT,
  bifocal_details TEXT,
  ipd_bridge TEXT,
  tested_by TEXT,
  created_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS orders (
  id TEXT NOT NULL,
  store_id TEXT NOT NULL REFERENCES stores (id),
  customer_id TEXT NOT NULL,
  checkup_id TEXT,
  order_date TEXT NOT NULL,
  expected_delivery_date TEXT,
  delivered_date TEXT,
  frame TEXT,
  lenses TEXT,
  total_amount NUMERIC(12,2),
  advance_amount NUMERIC(12,2),
  balance_amount NUMERIC(12,2),
  status TEXT NOT NULL DEFAULT 'pending',
  notes TEXT,
  created_at TIMESTAMPTZ NOT NULL,
  PRIMARY KEY (store_id, id)
);
*/

`

// BuildSQL genera el respaldo SQL de UNA tienda: comentario de cabecera,
// estructura de referencia e INSERTs con literales escapados.
func BuildSQL(store *entity.Store, customers []*entity.Customer, checkups []*entity.Checkup, orders []*entity.Order, now time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "-- Database Backup for %s\n", store.Name)
	fmt.Fprintf(&b, "-- Generated on: %s\n", now.UTC().Format(time.RFC3339))
	fmt.Fprintf(&b, "-- Store ID: %s\n\n", store.ID)
	b.WriteString(schemaReferenceSQL)

	b.WriteString("-- Store Data\n")
	writeStoreInserts(&b, []*entity.Store{store})
	writeDataSections(&b, customers, checkups, orders)
	return b.String()
}

// BuildAllSQL genera el respaldo SQL de TODAS las tiendas.
func BuildAllSQL(ds Dataset, now time.Time) string {
	var b strings.Builder
	b.WriteString("-- Complete Database Backup - All Stores\n")
	fmt.Fprintf(&b, "-- Generated on: %s\n\n", now.UTC().Format(time.RFC3339))
	b.WriteString(schemaReferenceSQL)

	if len(ds.Stores) > 0 {
		b.WriteString("-- All Stores Data\n")
		writeStoreInserts(&b, ds.Stores)
	}
	writeDataSections(&b, ds.Customers, ds.Checkups, ds.Orders)
	return b.String()
}

func writeDataSections(b *strings.Builder, customers []*entity.Customer, checkups []*entity.Checkup, orders []*entity.Order) {
	if len(customers) > 0 {
		b.WriteString("-- Customers Data\n")
		writeCustomerInserts(b, customers)
	}
	if len(checkups) > 0 {
		b.WriteString("-- Checkups Data\n")
		writeCheckupInserts(b, checkups)
	}
	if len(orders) > 0 {
		b.WriteString("-- Orders Data\n")
		writeOrderInserts(b, orders)
	}
}

func writeStoreInserts(b *strings.Builder, stores []*entity.Store) {
	for _, s := range stores {
		fmt.Fprintf(b,
			"INSERT INTO stores (id, name, address, phone, email, pin_hash, created_at, updated_at) VALUES (%s, %s, %s, %s, %s, %s, %s, %s);\n",
			quoteSQL(s.ID), quoteSQL(s.Name), nullableSQL(s.Address), nullableSQL(s.Phone),
			nullableSQL(s.Email), quoteSQL(s.PINHash), quoteTime(s.CreatedAt), quoteTime(s.UpdatedAt))
	}
	b.WriteString("\n")
}

func writeCustomerInserts(b *strings.Builder, customers []*entity.Customer) {
	for _, c := range customers {
		fmt.Fprintf(b,
			"INSERT INTO customers (id, store_id, name, phone, email, address, date_of_birth, remarks, created_at, updated_at) VALUES (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s);\n",
			quoteSQL(c.ID), quoteSQL(c.StoreID), quoteSQL(c.Name), quoteSQL(c.Phone),
			nullableSQL(c.Email), nullableSQL(c.Address), nullableSQL(c.DateOfBirth),
			nullableSQL(c.Remarks), quoteTime(c.CreatedAt), quoteTime(c.UpdatedAt))
	}
	b.WriteString("\n")
}

func writeCheckupInserts(b *strings.Builder, checkups []*entity.Checkup) {
	for _, ch := range checkups {
		fmt.Fprintf(b,
			"INSERT INTO checkups (id, store_id, customer_id, date, right_eye_spherical_dv, right_eye_cylindrical_dv, right_eye_axis_dv, right_eye_spherical_nv, right_eye_cylindrical_nv, right_eye_axis_nv, left_eye_spherical_dv, left_eye_cylindrical_dv, left_eye_axis_dv, left_eye_spherical_nv, left_eye_cylindrical_nv, left_eye_axis_nv, bifocal_details, ipd_bridge, tested_by, created_at) VALUES (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s);\n",
			quoteSQL(ch.ID), quoteSQL(ch.StoreID), quoteSQL(ch.CustomerID), quoteSQL(ch.Date),
			nullableSQL(ch.RightEyeSphericalDV), nullableSQL(ch.RightEyeCylindricalDV), nullableSQL(ch.RightEyeAxisDV),
			nullableSQL(ch.RightEyeSphericalNV), nullableSQL(ch.RightEyeCylindricalNV), nullableSQL(ch.RightEyeAxisNV),
			nullableSQL(ch.LeftEyeSphericalDV), nullableSQL(ch.LeftEyeCylindricalDV), nullableSQL(ch.LeftEyeAxisDV),
			nullableSQL(ch.LeftEyeSphericalNV), nullableSQL(ch.LeftEyeCylindricalNV), nullableSQL(ch.LeftEyeAxisNV),
			nullableSQL(ch.BifocalDetails), nullableSQL(ch.IPDBridge), nullableSQL(ch.TestedBy),
			quoteTime(ch.CreatedAt))
	}
	b.WriteString("\n")
}

func writeOrderInserts(b *strings.Builder, orders []*entity.Order) {
	for _, o := range orders {
		fmt.Fprintf(b,
			"INSERT INTO orders (id, store_id, customer_id, checkup_id, order_date, expected_delivery_date, delivered_date, frame, lenses, total_amount, advance_amount, balance_amount, status, notes, created_at) VALUES (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s);\n",
			quoteSQL(o.ID), quoteSQL(o.StoreID), quoteSQL(o.CustomerID), nullableSQL(o.CheckupID),
			quoteSQL(o.OrderDate), nullableSQL(o.ExpectedDeliveryDate), nullableSQL(o.DeliveredDate),
			nullableSQL(o.Frame), nullableSQL(o.Lenses),
			o.TotalAmount.String(), o.AdvanceAmount.String(), o.BalanceAmount.String(),
			quoteSQL(o.Status), nullableSQL(o.Notes), quoteTime(o.CreatedAt))
	}
	b.WriteString("\n")
}

// quoteSQL escapa comillas simples duplicándolas y envuelve en comillas.
func quoteSQL(v string) string {
	return "'" + strings.ReplaceAll(v, "'", "''") + "'"
}

// nullableSQL igual que quoteSQL pero vacío se vuelve NULL.
func nullableSQL(v string) string {
	if v == "" {
		return "NULL"
	}
	return quoteSQL(v)
}

func quoteTime(t time.Time) string {
	return quoteSQL(t.UTC().Format(time.RFC3339))
}

// BuildCSVArchive genera el respaldo CSV de UNA tienda: un CSV por tabla más
// un README, empaquetados en un ZIP en memoria.
func BuildCSVArchive(store *entity.Store, customers []*entity.Customer, checkups []*entity.Checkup, orders []*entity.Order, now time.Time) ([]byte, error) {
	readme := fmt.Sprintf("Database Backup - %s\n==========================================\n\nGenerated on: %s\nStore ID: %s\nStore Name: %s\n\nFiles included:\n- store.csv: Store information\n- customers.csv: Customer records\n- checkups.csv: Eye checkup records\n- orders.csv: Order records\n\nNote: These CSV files can be imported into Excel or other spreadsheet applications.\nTo restore data to the system, use the SQL backup format instead.\n",
		store.Name, now.UTC().Format(time.RFC3339), store.ID, store.Name)
	return buildArchive(Dataset{
		Stores:    []*entity.Store{store},
		Customers: customers,
		Checkups:  checkups,
		Orders:    orders,
	}, "store.csv", readme)
}

// BuildAllCSVArchive genera el respaldo CSV de TODAS las tiendas.
func BuildAllCSVArchive(ds Dataset, now time.Time) ([]byte, error) {
	readme := fmt.Sprintf("Complete Database Backup - All Stores\n====================================\n\nGenerated on: %s\nScope: All stores and their data\n\nFiles included:\n- stores.csv: All store information\n- customers.csv: All customer records\n- checkups.csv: All eye checkup records\n- orders.csv: All order records\n\nNote: These CSV files can be imported into Excel or other spreadsheet applications.\nTo restore data to the system, use the SQL backup format instead.\n",
		now.UTC().Format(time.RFC3339))
	return buildArchive(ds, "stores.csv", readme)
}

func buildArchive(ds Dataset, storesFilename, readme string) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	if len(ds.Stores) > 0 {
		if err := writeCSVEntry(zw, storesFilename, storeCSVRows(ds.Stores)); err != nil {
			return nil, err
		}
	}
	if len(ds.Customers) > 0 {
		if err := writeCSVEntry(zw, "customers.csv", customerCSVRows(ds.Customers)); err != nil {
			return nil, err
		}
	}
	if len(ds.Checkups) > 0 {
		if err := writeCSVEntry(zw, "checkups.csv", checkupCSVRows(ds.Checkups)); err != nil {
			return nil, err
		}
	}
	if len(ds.Orders) > 0 {
		if err := writeCSVEntry(zw, "orders.csv", orderCSVRows(ds.Orders)); err != nil {
			return nil, err
		}
	}
	fw, err := zw.Create("README.txt")
	if err != nil {
		return nil, fmt.Errorf("zip: crear entrada README.txt: %w", err)
	}
	if _, err := fw.Write([]byte(readme)); err != nil {
		return nil, fmt.Errorf("zip: escribir README.txt: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("zip: cerrar archivo: %w", err)
	}
	return buf.Bytes(), nil
}

func writeCSVEntry(zw *zip.Writer, name string, rows [][]string) error {
	fw, err := zw.Create(name)
	if err != nil {
		return fmt.Errorf("zip: crear entrada %s: %w", name, err)
	}
	w := csv.NewWriter(fw)
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("zip: escribir %s: %w", name, err)
	}
	return nil
}

func storeCSVRows(stores []*entity.Store) [][]string {
	rows := [][]string{{"id", "name", "address", "phone", "email", "created_at", "updated_at"}}
	for _, s := range stores {
		rows = append(rows, []string{
			s.ID, s.Name, s.Address, s.Phone, s.Email,
			s.CreatedAt.UTC().Format(time.RFC3339), s.UpdatedAt.UTC().Format(time.RFC3339),
		})
	}
	return rows
}

func customerCSVRows(customers []*entity.Customer) [][]string {
	rows := [][]string{{"id", "store_id", "name", "phone", "email", "address", "date_of_birth", "remarks", "created_at", "updated_at"}}
	for _, c := range customers {
		rows = append(rows, []string{
			c.ID, c.StoreID, c.Name, c.Phone, c.Email, c.Address, c.DateOfBirth, c.Remarks,
			c.CreatedAt.UTC().Format(time.RFC3339), c.UpdatedAt.UTC().Format(time.RFC3339),
		})
	}
	return rows
}

func checkupCSVRows(checkups []*entity.Checkup) [][]string {
	rows := [][]string{{
		"id", "store_id", "customer_id", "date",
		"right_eye_spherical_dv", "right_eye_cylindrical_dv", "right_eye_axis_dv",
		"right_eye_spherical_nv", "right_eye_cylindrical_nv", "right_eye_axis_nv",
		"left_eye_spherical_dv", "left_eye_cylindrical_dv", "left_eye_axis_dv",
		"left_eye_spherical_nv", "left_eye_cylindrical_nv", "left_eye_axis_nv",
		"bifocal_details", "ipd_bridge", "tested_by", "created_at",
	}}
	for _, ch := range checkups {
		rows = append(rows, []string{
			ch.ID, ch.StoreID, ch.CustomerID, ch.Date,
			ch.RightEyeSphericalDV, ch.RightEyeCylindricalDV, ch.RightEyeAxisDV,
			ch.RightEyeSphericalNV, ch.RightEyeCylindricalNV, ch.RightEyeAxisNV,
			ch.LeftEyeSphericalDV, ch.LeftEyeCylindricalDV, ch.LeftEyeAxisDV,
			ch.LeftEyeSphericalNV, ch.LeftEyeCylindricalNV, ch.LeftEyeAxisNV,
			ch.BifocalDetails, ch.IPDBridge, ch.TestedBy,
			ch.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return rows
}

func orderCSVRows(orders []*entity.Order) [][]string {
	rows := [][]string{{
		"id", "store_id", "customer_id", "checkup_id", "order_date",
		"expected_delivery_date", "delivered_date", "frame", "lenses",
		"total_amount", "advance_amount", "balance_amount", "status", "notes", "created_at",
	}}
	for _, o := range orders {
		rows = append(rows, []string{
			o.ID, o.StoreID, o.CustomerID, o.CheckupID, o.OrderDate,
			o.ExpectedDeliveryDate, o.DeliveredDate, o.Frame, o.Lenses,
			formatAmount(o.TotalAmount), formatAmount(o.AdvanceAmount), formatAmount(o.BalanceAmount),
			o.Status, o.Notes, o.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return rows
}

func formatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

var invalidFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9\-_]`)
var underscoreRuns = regexp.MustCompile(`_+`)

// Filename nombre de descarga saneado: <tienda>_backup_<fecha>_<hora>.<ext>.
func Filename(storeName, ext string, now time.Time) string {
	base := invalidFilenameChars.ReplaceAllString(storeName, "_")
	base = underscoreRuns.ReplaceAllString(base, "_")
	return fmt.Sprintf("%s_backup_%s.%s", base, timestamp(now), ext)
}

// AllStoresFilename nombre de descarga del respaldo global.
func AllStoresFilename(ext string, now time.Time) string {
	return fmt.Sprintf("all_stores_backup_%s.%s", timestamp(now), ext)
}

func timestamp(now time.Time) string {
	return now.UTC().Format("2006-01-02_150405")
}
