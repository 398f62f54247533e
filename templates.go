package main

import "html/template"

// rich returns a post body as-is. Post bodies come from the admin's
// editor and are trusted HTML; comment bodies never go through this.
func rich(s string) template.HTML {
	return template.HTML(s)
}

func loadTemplates() map[string]*template.Template {
	templates := make(map[string]*template.Template)
	pages := []string{
		"index.html", "post.html", "make-post.html",
		"register.html", "login.html", "about.html", "contact.html",
	}

	funcs := template.FuncMap{
		"rich": rich,
	}

	for _, page := range pages {
		templates[page] = template.Must(
			template.New("").Funcs(funcs).ParseFiles(
				"templates/base.html",
				"templates/"+page,
			))
	}

	return templates
}
