// seed_suppliers genera un script SQL para poblar la tabla suppliers a partir
// de un CSV exportado de sistemas legados (codificado en ISO-8859-1, con punto
// y coma como separador: nombre;email;telefono;direccion).
//
// Uso: go run ./cmd/seed_suppliers [ruta/proveedores.csv]
// Por defecto busca proveedores.csv en el directorio actual.
// Escribe: internal/infrastructure/postgres/migrations/003_seed_suppliers.sql
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

func main() {
	csvPath := "proveedores.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}
	f, err := os.Open(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	// Los exports legados vienen en ISO-8859-1; transcodificar a UTF-8.
	reader := csv.NewReader(transform.NewReader(f, charmap.ISO8859_1.NewDecoder()))
	reader.Comma = ';'
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}

	type supplier struct{ name, email, phone, address string }
	var suppliers []supplier
	for i, rec := range records {
		if i == 0 && strings.EqualFold(strings.TrimSpace(rec[0]), "nombre") {
			continue // cabecera
		}
		if len(rec) < 2 || strings.TrimSpace(rec[0]) == "" {
			continue
		}
		s := supplier{name: strings.TrimSpace(rec[0]), email: strings.TrimSpace(rec[1])}
		if len(rec) > 2 {
			s.phone = strings.TrimSpace(rec[2])
		}
		if len(rec) > 3 {
			s.address = strings.TrimSpace(rec[3])
		}
		suppliers = append(suppliers, s)
	}
	if len(suppliers) == 0 {
		fmt.Fprintln(os.Stderr, "El CSV no contiene proveedores")
		os.Exit(1)
	}

	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "internal", "infrastructure", "postgres", "migrations", "003_seed_suppliers.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	out.WriteString("-- Proveedores importados del sistema legado\n")
	out.WriteString("-- Generado desde " + filepath.Base(csvPath) + "\n\n")
	out.WriteString("INSERT INTO suppliers (id, name, email, phone, address, products_supplied, status, created_at, updated_at) VALUES\n")
	for i, s := range suppliers {
		sep := ","
		if i == len(suppliers)-1 {
			sep = ""
		}
		fmt.Fprintf(out, "  (gen_random_uuid(), '%s', '%s', '%s', '%s', 0, 'active', now(), now())%s\n",
			escapeSQL(s.name), escapeSQL(s.email), escapeSQL(s.phone), escapeSQL(s.address), sep)
	}
	out.WriteString("ON CONFLICT DO NOTHING;\n")

	fmt.Printf("Generado %s: %d proveedores\n", outPath, len(suppliers))
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
