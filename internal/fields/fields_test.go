package fields

import (
	"reflect"
	"testing"
)

func TestEmail(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		want   string
		wantOK bool
	}{
		{"simple", "joao@example.com", "joao@example.com", true},
		{"first of many", "a@x.io e b@y.io", "a@x.io", true},
		{"trailing punctuation", "contato: maria.silva+cv@empresa.com.br.", "maria.silva+cv@empresa.com.br", true},
		{"short tld", "x@y.c", "", false},
		{"none", "sem contato", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Email(tt.text)
			if got != tt.want || ok != tt.wantOK {
				t.Fatalf("Email(%q) = %q, %v; want %q, %v", tt.text, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestLinkedInAndGitHub(t *testing.T) {
	text := "LinkedIn: HTTPS://WWW.LinkedIn.com/in/maria-silva\ngithub.com/nope https://github.com/maria/repo next"

	li, ok := LinkedIn(text)
	if !ok || li != "HTTPS://WWW.LinkedIn.com/in/maria-silva" {
		t.Fatalf("LinkedIn() = %q, %v", li, ok)
	}
	gh, ok := GitHub(text)
	if !ok || gh != "https://github.com/maria/repo" {
		t.Fatalf("GitHub() = %q, %v", gh, ok)
	}

	if _, ok := LinkedIn("linkedin.com/in/x"); ok {
		t.Fatal("expected scheme-less linkedin host to be ignored")
	}
	if _, ok := GitHub("https://gitlab.com/x"); ok {
		t.Fatal("expected gitlab URL not to match")
	}
}

func TestFormatPhone(t *testing.T) {
	loc := BrazilianPortuguese()

	tests := []struct {
		raw  string
		want string
	}{
		{"11988887777", "(11) 9 8888-7777"},
		{"11) 98888-7777", "(11) 9 8888-7777"},
		{"+55 (43) 99636-9387", "(43) 9 9636-9387"},
		{"(41) 3333-4444", "(41) 3333-4444"},
		{"554133334444", "(41) 3333-4444"},
		{"99999-0000", "99999-0000"},
		{"2019   2020", "2019 2020"},
	}

	for _, tt := range tests {
		if got := FormatPhone(loc, tt.raw); got != tt.want {
			t.Errorf("FormatPhone(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestFormatPhone_DigitLayout(t *testing.T) {
	loc := BrazilianPortuguese()

	eleven := "12345678901"
	if got := FormatPhone(loc, eleven); got != "(12) 3 4567-8901" {
		t.Errorf("11 digits: got %q", got)
	}
	ten := "1234567890"
	if got := FormatPhone(loc, ten); got != "(12) 3456-7890" {
		t.Errorf("10 digits: got %q", got)
	}
}

func TestPhone(t *testing.T) {
	loc := BrazilianPortuguese()

	tests := []struct {
		name    string
		text    string
		wantRaw string
		want    string
	}{
		{"loose spacing", "Tel: (43) 99636 - 9387", "43) 99636 - 9387", "(43) 9 9636-9387"},
		{"country code", "fone +55 11 98888-7777", "55 11 98888-7777", "(11) 9 8888-7777"},
		{"landline with dots", "Tel 41 3333.4444", "41 3333.4444", "(41) 3333-4444"},
		{"no phone", "Maria Silva", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, _ := FindPhone(loc, tt.text)
			if raw != tt.wantRaw {
				t.Fatalf("FindPhone(%q) = %q, want %q", tt.text, raw, tt.wantRaw)
			}
			got, ok := Phone(loc, tt.text)
			if got != tt.want || ok != (tt.want != "") {
				t.Fatalf("Phone(%q) = %q, %v; want %q", tt.text, got, ok, tt.want)
			}
		})
	}
}

func TestName(t *testing.T) {
	loc := BrazilianPortuguese()

	tests := []struct {
		name   string
		text   string
		want   string
		wantOK bool
	}{
		{"state suffix and marker", "Maria Silva - PR\nTel: (41) 99999-0000", "Maria Silva", true},
		{"email on next line", "João Pedro Alves\njoao@example.com\n(11) 98888-7777", "João Pedro Alves", true},
		{"portfolio marker", "Ana Souza Portfólio: ana.dev", "Ana Souza", true},
		{"city absorbed and capped", "Ana Beatriz Souza Lima Curitiba\nTelefone 4133334444", "Ana Beatriz Souza Lima", true},
		// two year runs read as a phone number and end the header there
		{"year range ends header", "Ana Paula 2019 2020 Desenvolvedora", "Ana Paula", true},
		{"single word", "Currículo\nE-mail: x@y.com", "", false},
		{"marker first", "LinkedIn https://linkedin.com/in/x", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Name(loc, tt.text)
			if got != tt.want || ok != tt.wantOK {
				t.Fatalf("Name(%q) = %q, %v; want %q, %v", tt.text, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestName_HeaderWindow(t *testing.T) {
	loc := BrazilianPortuguese()
	loc.HeaderLength = 5

	got, ok := Name(loc, "Maria Silva")
	if ok {
		t.Fatalf("expected header window to cut the second word, got %q", got)
	}
}

func TestSeniority(t *testing.T) {
	loc := BrazilianPortuguese()

	tests := []struct {
		text   string
		want   string
		wantOK bool
	}{
		{"Desenvolvedor júnior, buscando vaga sênior", SenioritySenior, true},
		{"SÊNIOR FLUTTER DEVELOPER", SenioritySenior, true},
		{"Sr. Backend", SenioritySenior, true},
		{"Analista Pleno", SeniorityMid, true},
		{"Estágio em desenvolvimento", SeniorityJunior, true},
		{"Estagiário", SeniorityJunior, true},
		{"Dev Jr", SeniorityJunior, true},
		{"Developer", "", false},
	}

	for _, tt := range tests {
		got, ok := Seniority(loc, tt.text)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("Seniority(%q) = %q, %v; want %q, %v", tt.text, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestSkills(t *testing.T) {
	loc := BrazilianPortuguese()

	tests := []struct {
		name string
		text string
		want []string
	}{
		{"dedupe across casing", "React react REACT", []string{"React"}},
		{"vocabulary order and overrides", "GitHub, Git, SQLite e Dart com Flutter", []string{"Flutter", "Dart", "SQLite", "Git", "GitHub"}},
		{"sql and typescript", "sql; TypeScript; javascript", []string{"SQL", "Typescript", "Javascript"}},
		{"whole words only", "reactive pythonic", []string{}},
		{"empty", "", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Skills(loc, tt.text)
			if got == nil {
				t.Fatal("Skills returned nil")
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Skills(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestLocale_WithSkills(t *testing.T) {
	base := BrazilianPortuguese()
	loc := base.WithSkills(NewSkill("go", "Go"), NewSkill("golang", "Go"), NewSkill("kotlin", ""))

	got := Skills(loc, "Go, golang e Kotlin; também Flutter")
	want := []string{"Go", "Kotlin"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Skills() = %v, want %v", got, want)
	}
	if len(base.Skills) != 11 {
		t.Fatalf("base locale vocabulary changed: %d skills", len(base.Skills))
	}
}
